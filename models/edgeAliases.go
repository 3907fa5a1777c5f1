package models

// Named aliases for the Edge instantiations used by the GraphQL schema.
// gqlgen's typemap cannot reference generic instantiations directly
// (e.g. models.Edge[models.Address]), so gqlgen.yml binds these instead.
type (
	AddressEdge     = Edge[Address]
	TaxEdge         = Edge[Tax]
	InvoiceEdge     = Edge[Invoice]
	InvoiceItemEdge = Edge[InvoiceItem]
)

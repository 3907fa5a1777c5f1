package middlewares

import (
	"context"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/jirajara/invoices_backend/config"
	"github.com/jirajara/invoices_backend/models"
	"gorm.io/gorm"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	userLoader    *dataloader.Loader[string, *models.User]
	addressLoader *dataloader.Loader[string, *models.Address]
	taxLoader     *dataloader.Loader[string, *models.Tax]
	invoiceLoader *dataloader.Loader[string, *models.Invoice]
}

// NewLoaders instantiates data loaders for the middleware
func NewLoaders(conn *gorm.DB) *Loaders {
	// define the data loader
	userReader := &userReader{db: conn}
	addressReader := &addressReader{db: conn}
	taxReader := &taxReader{db: conn}
	invoiceReader := &invoiceReader{db: conn}

	return &Loaders{
		userLoader:    dataloader.NewBatchedLoader(userReader.getUsers, dataloader.WithWait[string, *models.User](time.Millisecond)),
		addressLoader: dataloader.NewBatchedLoader(addressReader.getAddresses, dataloader.WithWait[string, *models.Address](time.Millisecond)),
		taxLoader:     dataloader.NewBatchedLoader(taxReader.getTaxes, dataloader.WithWait[string, *models.Tax](time.Millisecond)),
		invoiceLoader: dataloader.NewBatchedLoader(invoiceReader.getInvoices, dataloader.WithWait[string, *models.Invoice](time.Millisecond)),
	}
}

func LoaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		loader := NewLoaders(config.GetDB())
		ctx := context.WithValue(c.Request.Context(), loadersKey, loader)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results
// (T must be a struct)
func generateLoaderResults[T models.Data](results []T, ids []string) []*dataloader.Result[*T] {
	// generate resultMap from results
	resultMap := make(map[string]T)
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[*T], 0, len(ids))
	for _, id := range ids {
		data := resultMap[id]
		if reflect.ValueOf(data).IsZero() {
			data = data.GetDefault(id).(T)
		}
		loaderResults = append(loaderResults, &dataloader.Result[*T]{Data: &data})
	}
	return loaderResults
}

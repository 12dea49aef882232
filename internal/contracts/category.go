package contracts

import "github.com/dmogiovanni/teugestor-backend/internal/domain/category"

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}

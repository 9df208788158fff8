package repository

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/backend"
	"github.com/fekuna/omnipos-retail-view/internal/model"
)

type RESTRepository struct {
	Client *backend.Client
	Path   string
}

func NewRESTRepository(client *backend.Client, path string) *RESTRepository {
	return &RESTRepository{Client: client, Path: path}
}

func (r *RESTRepository) FindAll(ctx context.Context, merchantID string) ([]model.InventoryLine, error) {
	var lines []model.InventoryLine
	if err := r.Client.List(ctx, r.Path, merchantID, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

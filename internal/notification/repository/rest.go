package repository

import (
	"context"

	"github.com/fekuna/omnipos-retail-view/internal/backend"
	"github.com/fekuna/omnipos-retail-view/internal/model"
)

// RESTRepository is the only notification source; notifications have no
// table of their own in the product database.
type RESTRepository struct {
	Client *backend.Client
	Path   string
}

func NewRESTRepository(client *backend.Client, path string) *RESTRepository {
	return &RESTRepository{Client: client, Path: path}
}

func (r *RESTRepository) FindAll(ctx context.Context, merchantID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.Client.List(ctx, r.Path, merchantID, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/fekuna/omnipos-retail-view/internal/dashboard"
	"github.com/fekuna/omnipos-retail-view/internal/dashboard/dto"
	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/notification"
	notificationdto "github.com/fekuna/omnipos-retail-view/internal/notification/dto"
	"github.com/fekuna/omnipos-retail-view/internal/product"
	productdto "github.com/fekuna/omnipos-retail-view/internal/product/dto"
	"github.com/fekuna/omnipos-retail-view/internal/view"
)

// AttentionLimit caps the products listed under "needs attention".
const AttentionLimit = 5

type dashboardUseCase struct {
	products      product.UseCase
	notifications notification.UseCase
	checks        inventorycheck.UseCase
}

func NewDashboardUseCase(products product.UseCase, notifications notification.UseCase, checks inventorycheck.UseCase) dashboard.UseCase {
	return &dashboardUseCase{
		products:      products,
		notifications: notifications,
		checks:        checks,
	}
}

func (uc *dashboardUseCase) GetDashboard(ctx context.Context, merchantID string) (*dto.Dashboard, error) {
	products, err := uc.products.ListProducts(ctx, &productdto.ListProductsInput{MerchantID: merchantID})
	if err != nil {
		return nil, err
	}
	notifications, err := uc.notifications.ListNotifications(ctx, &notificationdto.ListNotificationsInput{MerchantID: merchantID})
	if err != nil {
		return nil, err
	}

	out := &dto.Dashboard{
		Stock:               products.View.Counts.Buckets,
		ProductCount:        products.View.Counts.SourceTotal,
		StockValue:          products.View.Counts.StockValue,
		UnreadNotifications: notifications.View.Counts.Unread,
		Attention:           attention(products.View.Items, AttentionLimit),
	}
	if products.FetchErr != nil {
		out.FetchErrors = append(out.FetchErrors, "products: "+products.FetchErr.Error())
	}
	if notifications.FetchErr != nil {
		out.FetchErrors = append(out.FetchErrors, "notifications: "+notifications.FetchErr.Error())
	}
	if summary, ok := uc.checks.OpenCheck(ctx, merchantID); ok {
		out.OpenCheck = summary
	}
	return out, nil
}

// attention picks out and low products, out of stock first, then by stock
// ascending. Ties keep catalog order.
func attention(products []model.Product, limit int) []model.Product {
	picked := make([]model.Product, 0, limit)
	for _, p := range products {
		if view.BucketOf(p.CurrentStock, p.MinStock) != view.BucketNormal {
			picked = append(picked, p)
		}
	}

	slices.SortStableFunc(picked, func(a, b model.Product) int {
		aOut := view.BucketOf(a.CurrentStock, a.MinStock) == view.BucketOut
		bOut := view.BucketOf(b.CurrentStock, b.MinStock) == view.BucketOut
		if aOut != bOut {
			if aOut {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.CurrentStock, b.CurrentStock)
	})

	if len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}

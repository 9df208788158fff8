package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/fekuna/omnipos-retail-view/internal/inventory"
	inventorydto "github.com/fekuna/omnipos-retail-view/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck"
	"github.com/fekuna/omnipos-retail-view/internal/inventorycheck/dto"
	"github.com/fekuna/omnipos-retail-view/internal/logger"
	"github.com/fekuna/omnipos-retail-view/internal/model"
	"github.com/fekuna/omnipos-retail-view/internal/screen"
	"github.com/fekuna/omnipos-retail-view/internal/view"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkUseCase struct {
	inventory inventory.UseCase
	items     *screen.Store[model.CheckItem]
	memos     view.Memos[view.CheckView]
	logger    logger.ZapLogger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]model.CheckSession // by session id, without items
	current  map[string]string             // merchant id -> session id
}

func NewCheckUseCase(inv inventory.UseCase, log logger.ZapLogger) inventorycheck.UseCase {
	return &checkUseCase{
		inventory: inv,
		items:     screen.NewStore[model.CheckItem]("inventory_checks", nil, log),
		logger:    log,
		now:       time.Now,
		sessions:  map[string]model.CheckSession{},
		current:   map[string]string{},
	}
}

func (uc *checkUseCase) StartCheck(ctx context.Context, merchantID string) (*dto.CheckResult, error) {
	list, err := uc.inventory.ListInventory(ctx, &inventorydto.ListInventoryInput{MerchantID: merchantID})
	if err != nil {
		return nil, err
	}
	if len(list.View.Items) == 0 {
		if list.FetchErr != nil {
			return nil, fmt.Errorf("%w: %v", inventorycheck.ErrNoInventory, list.FetchErr)
		}
		return nil, inventorycheck.ErrNoInventory
	}

	session := model.CheckSession{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		StartedAt:  uc.now(),
	}
	items := view.NewCheckItems(list.View.Items)

	uc.mu.Lock()
	snap := uc.items.Put(session.ID, items)
	if prev, ok := uc.current[merchantID]; ok {
		delete(uc.sessions, prev)
		uc.items.Delete(prev)
		uc.memos.Drop(prev)
	}
	uc.sessions[session.ID] = session
	uc.current[merchantID] = session.ID
	uc.mu.Unlock()

	uc.logger.Info("inventory check started",
		zap.String("merchant_id", merchantID),
		zap.String("session_id", session.ID),
		zap.Int("items", len(snap.Records)),
	)

	return &dto.CheckResult{
		SessionID: session.ID,
		StartedAt: session.StartedAt,
		View:      view.DeriveCheck(snap.Records, "", view.FilterConfig{}),
		Version:   snap.Version,
		FetchErr:  list.FetchErr,
	}, nil
}

func (uc *checkUseCase) RecordCount(ctx context.Context, input *dto.RecordCountInput) (*dto.CountResult, error) {
	if input.ActualQuantity < 0 || math.IsNaN(input.ActualQuantity) || math.IsInf(input.ActualQuantity, 0) {
		return nil, inventorycheck.ErrInvalidCount
	}
	if _, ok := uc.session(input.MerchantID, input.SessionID); !ok {
		return nil, inventorycheck.ErrSessionNotFound
	}

	snap, err := uc.items.Update(input.SessionID, func(items []model.CheckItem) ([]model.CheckItem, error) {
		updated, found := view.UpdateCount(items, input.ItemID, input.ActualQuantity)
		if !found {
			return nil, inventorycheck.ErrItemNotFound
		}
		return updated, nil
	})
	if errors.Is(err, screen.ErrNotFound) {
		return nil, inventorycheck.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	out := &dto.CountResult{Summary: view.SummarizeCheck(snap.Records)}
	for _, item := range snap.Records {
		if item.ID == input.ItemID {
			out.Item = item
			break
		}
	}
	return out, nil
}

func (uc *checkUseCase) GetCheck(ctx context.Context, input *dto.GetCheckInput) (*dto.CheckResult, error) {
	session, ok := uc.session(input.MerchantID, input.SessionID)
	if !ok {
		return nil, inventorycheck.ErrSessionNotFound
	}
	snap, ok := uc.items.Lookup(input.SessionID)
	if !ok {
		return nil, inventorycheck.ErrSessionNotFound
	}

	v := uc.memos.For(input.SessionID).Get(snap.Version, input.Query, input.Filter, func() view.CheckView {
		return view.DeriveCheck(snap.Records, input.Query, input.Filter)
	})

	return &dto.CheckResult{
		SessionID: session.ID,
		StartedAt: session.StartedAt,
		View:      v,
		Version:   snap.Version,
	}, nil
}

func (uc *checkUseCase) OpenCheck(ctx context.Context, merchantID string) (*view.CheckSummary, bool) {
	uc.mu.Lock()
	id, ok := uc.current[merchantID]
	uc.mu.Unlock()
	if !ok {
		return nil, false
	}

	snap, ok := uc.items.Lookup(id)
	if !ok {
		return nil, false
	}
	summary := view.SummarizeCheck(snap.Records)
	return &summary, true
}

// session returns the session only when it belongs to merchantID.
func (uc *checkUseCase) session(merchantID, sessionID string) (model.CheckSession, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[sessionID]
	if !ok || s.MerchantID != merchantID {
		return model.CheckSession{}, false
	}
	return s, true
}

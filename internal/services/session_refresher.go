package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"seller_panel/internal/models"
	"seller_panel/internal/session"
	"seller_panel/pkg/adminapi"
)

// sessionStore is the part of the session store the refresher touches.
type sessionStore interface {
	LoadUser(ctx context.Context) (*models.SessionUser, error)
	SaveUser(ctx context.Context, user *models.SessionUser) error
}

// SessionRefresher keeps the cached seller identity in sync with the
// remote API so approval-status changes take effect without a re-login.
// Unapproved sellers are polled aggressively; approved ones slowly.
type SessionRefresher struct {
	api      *adminapi.Client
	store    sessionStore
	pending  time.Duration
	approved time.Duration

	kick chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewSessionRefresher(api *adminapi.Client, store sessionStore, pending, approved time.Duration) *SessionRefresher {
	return &SessionRefresher{
		api:      api,
		store:    store,
		pending:  pending,
		approved: approved,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Start launches the polling loop. The first refresh runs immediately;
// after each pass the timer is re-armed from the current approval state,
// so an approval flips the cadence on the next tick rather than stacking
// timers.
func (r *SessionRefresher) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		interval := r.refresh(ctx)
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-r.kick:
			case <-timer.C:
			}
			interval = r.refresh(ctx)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(interval)
		}
	}()
}

// Kick forces an immediate refresh, the analog of a user returning to the
// panel.
func (r *SessionRefresher) Kick() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

// Stop tears the loop down and waits for the in-flight pass to finish.
// A stopped refresher never writes to the session again.
func (r *SessionRefresher) Stop() {
	r.once.Do(func() { close(r.stop) })
	r.wg.Wait()
}

// refresh runs one sync pass and returns the interval until the next one.
func (r *SessionRefresher) refresh(ctx context.Context) time.Duration {
	user, err := r.store.LoadUser(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			log.Printf("Session refresh skipped: %v", err)
		}
		return r.pending
	}

	summary, err := r.fetchSummary(ctx, user.ID)
	if err != nil {
		log.Printf("Could not refresh seller %d: %v", user.ID, err)
		return r.IntervalFor(user)
	}

	if r.stopped() {
		return r.IntervalFor(user)
	}

	// Persist only on a real change; a write per tick would hammer the
	// store at the pending cadence.
	if !strings.EqualFold(user.ApproveStatus, summary.ApproveStatus) {
		user.MergeSummary(summary)
		if err := r.store.SaveUser(ctx, user); err != nil {
			log.Printf("Could not persist refreshed session: %v", err)
		} else {
			log.Printf("Seller %d approval status changed to %q", user.ID, summary.ApproveStatus)
		}
	}
	return r.IntervalFor(user)
}

// fetchSummary finds the seller's current row, preferring the list
// endpoint and falling back to the detail endpoint when the list omits
// the seller.
func (r *SessionRefresher) fetchSummary(ctx context.Context, sellerID int64) (*models.SellerSummary, error) {
	sellers, err := r.api.Sellers(ctx)
	if err == nil {
		for i := range sellers {
			if sellers[i].ID == sellerID {
				return &sellers[i], nil
			}
		}
	}

	profile, derr := r.api.Seller(ctx, sellerID)
	if derr != nil {
		if err != nil {
			return nil, err
		}
		return nil, derr
	}
	return &models.SellerSummary{
		ID:            profile.Seller.ID,
		Name:          profile.Seller.Name,
		Email:         profile.Seller.Email,
		Mobile:        profile.Seller.Mobile,
		ApproveStatus: profile.Seller.ApproveStatus,
		CompanyName:   profile.Company.CompanyName,
	}, nil
}

// IntervalFor picks the polling cadence for a user's approval state.
func (r *SessionRefresher) IntervalFor(user *models.SessionUser) time.Duration {
	if user != nil && user.IsApproved() {
		return r.approved
	}
	return r.pending
}

func (r *SessionRefresher) stopped() bool {
	select {
	case <-r.stop:
		return true
	default:
		return false
	}
}

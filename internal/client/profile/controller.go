// Package profile implements the profile page controller: it hydrates the
// identity, keeps the editable draft and runs the two-phase save (image upload,
// then profile update) while keeping the bearer token stable.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/interviewprep/internal/client/client"
	"github.com/dmitrijs2005/interviewprep/internal/client/identity"
	"github.com/dmitrijs2005/interviewprep/internal/client/models"
	"github.com/dmitrijs2005/interviewprep/internal/filex"
	"github.com/dmitrijs2005/interviewprep/internal/logging"
)

// SessionStore is the slice of the durable client store the controller
// writes to and reads the token from.
type SessionStore interface {
	SaveSession(ctx context.Context, id models.Identity)
	Token(ctx context.Context) (string, bool)
}

// Controller drives one profile view. All methods are safe for concurrent
// use; network calls run without holding the lock.
type Controller struct {
	api          client.ProfileAPI
	identity     *identity.Context
	store        SessionStore
	log          logging.Logger
	maxImageSize int64

	mu       sync.Mutex
	mounted  bool
	epoch    uint64
	state    State
	fetching bool
	draft    models.Draft
	lastErr  error
}

// New wires a controller. maxImageSize bounds SelectImage reads; <= 0 means
// no limit.
func New(api client.ProfileAPI, ident *identity.Context, st SessionStore, log logging.Logger, maxImageSize int64) *Controller {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Controller{
		api:          api,
		identity:     ident,
		store:        st,
		log:          log.With("component", "profile"),
		maxImageSize: maxImageSize,
	}
}

// Mount enters Hydrating and populates the view, fetching the profile only if
// the identity context is empty. A fetch failure is logged and leaves the
// controller in Hydrating with no draft; call Refresh to retry.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	c.mounted = true
	c.epoch++
	c.state = Hydrating
	c.draft = models.Draft{}
	c.lastErr = nil
	c.fetching = true
	epoch := c.epoch
	c.mu.Unlock()

	return c.hydrate(ctx, epoch)
}

// Refresh re-runs hydration. It does nothing once the profile is loaded.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.state != Hydrating {
		c.mu.Unlock()
		return nil
	}
	if c.fetching {
		c.mu.Unlock()
		return ErrFetchInProgress
	}
	c.fetching = true
	c.lastErr = nil
	epoch := c.epoch
	c.mu.Unlock()

	return c.hydrate(ctx, epoch)
}

func (c *Controller) hydrate(ctx context.Context, epoch uint64) error {
	defer c.doneFetching(epoch)

	_, ok, gen := c.identity.Snapshot()
	if ok {
		c.enterViewing(epoch)
		return nil
	}

	p, err := c.api.GetProfile(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		c.log.Error(ctx, "profile fetch failed", "error", err)
		c.mu.Lock()
		if c.live(epoch) {
			c.lastErr = err
		}
		c.mu.Unlock()
		return err
	}

	token, _ := c.store.Token(ctx)
	merged := models.MergeProfile(p, token)

	if c.identity.ReplaceIf(gen, merged) {
		c.store.SaveSession(ctx, merged)
	} else if _, ok := c.identity.Current(); !ok {
		c.log.Warn(ctx, "dropping profile fetched for an ended session")
		return ErrSessionEnded
	}

	c.enterViewing(epoch)
	return nil
}

func (c *Controller) doneFetching(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch == epoch {
		c.fetching = false
	}
}

func (c *Controller) enterViewing(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.live(epoch) {
		return
	}
	c.state = Viewing
	c.draft = models.Draft{}
	c.lastErr = nil
}

// live must be called with mu held.
func (c *Controller) live(epoch uint64) bool {
	return c.mounted && c.epoch == epoch
}

// BeginEdit copies the current identity into a fresh draft and enters Editing.
func (c *Controller) BeginEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return ErrNotMounted
	}
	switch c.state {
	case Hydrating:
		return ErrNotHydrated
	case Saving:
		return ErrSaveInProgress
	case Editing, SaveFailed:
		return nil
	}

	id, ok := c.identity.Current()
	if !ok {
		return ErrSessionEnded
	}
	c.draft = models.DraftFrom(id)
	c.state = Editing
	return nil
}

// SetField changes one draft field. Any text is accepted.
func (c *Controller) SetField(f models.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkEditable(); err != nil {
		return err
	}
	return c.draft.Set(f, value)
}

// SelectImage reads a local image into the draft and derives its preview.
// Nothing is sent to the server until Save.
func (c *Controller) SelectImage(ctx context.Context, path string) error {
	c.mu.Lock()
	err := c.checkEditable()
	epoch := c.epoch
	c.mu.Unlock()
	if err != nil {
		return err
	}

	data, err := filex.ReadLimited(path, c.maxImageSize)
	if err != nil {
		return err
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: %s is %s", ErrNotAnImage, filepath.Base(path), contentType)
	}

	sel := models.ImageSelection{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.live(epoch) {
		return ErrNotMounted
	}
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.draft.Pending = &sel
	c.draft.Preview = sel.DataURI()

	c.log.Debug(ctx, "image selected", "file", sel.FileName, "type", contentType, "size", len(data))
	return nil
}

// checkEditable must be called with mu held.
func (c *Controller) checkEditable() error {
	if !c.mounted {
		return ErrNotMounted
	}
	if !c.state.editable() {
		return ErrNotEditable
	}
	return nil
}

// Cancel discards the draft and returns to Viewing. Calling it while already
// Viewing is a no-op.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return ErrNotMounted
	}
	switch {
	case c.state == Viewing:
		return nil
	case c.state == Saving:
		return ErrSaveInProgress
	case !c.state.editable():
		return ErrNotEditable
	}

	c.state = Viewing
	c.draft = models.Draft{}
	c.lastErr = nil
	return nil
}

// Save commits the draft: the pending image is uploaded first and only on
// success is the profile update sent with the resolved image URL. Any failure
// leaves the draft exactly as it was and moves to SaveFailed. Without a
// session nothing is sent and the state is left as is.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.state == Saving {
		c.mu.Unlock()
		return ErrSaveInProgress
	}
	if !c.state.editable() {
		c.mu.Unlock()
		return ErrNotEditable
	}
	held, present, gen := c.identity.Snapshot()
	if !present {
		c.mu.Unlock()
		c.log.Warn(ctx, "refusing to save profile, session ended")
		return ErrSessionEnded
	}
	draft := c.draft.Clone()
	c.state = Saving
	epoch := c.epoch
	c.mu.Unlock()

	imageURL := draft.ProfileImageURL
	if draft.Pending != nil {
		url, err := c.api.UploadImage(ctx, *draft.Pending)
		if err != nil {
			return c.saveFailed(ctx, epoch, fmt.Errorf("%w: %w", ErrUploadFailed, err))
		}
		imageURL = url
	}

	p, err := c.api.UpdateProfile(ctx, draft.Update(imageURL))
	if err != nil {
		// An image uploaded above stays orphaned on the server.
		return c.saveFailed(ctx, epoch, fmt.Errorf("%w: %w", ErrUpdateFailed, err))
	}

	token := held.Token
	if token == "" {
		token, _ = c.store.Token(ctx)
	}
	merged := models.MergeProfile(p, token)

	if !c.identity.ReplaceIf(gen, merged) {
		c.log.Warn(ctx, "dropping profile update response, session changed during save")
		c.mu.Lock()
		if c.live(epoch) {
			c.state = Viewing
			c.draft = models.Draft{}
			c.lastErr = ErrSessionEnded
		}
		c.mu.Unlock()
		return ErrSessionEnded
	}
	c.store.SaveSession(ctx, merged)

	c.log.Info(ctx, "profile saved", "email", merged.Email, "image", merged.ProfileImageURL)
	c.enterViewing(epoch)
	return nil
}

func (c *Controller) saveFailed(ctx context.Context, epoch uint64, err error) error {
	c.log.Error(ctx, "profile save failed", "error", err)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live(epoch) {
		c.state = SaveFailed
		c.lastErr = err
	}
	return err
}

// Unmount detaches the controller. Results of calls still in flight are not
// applied to it afterwards.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = false
	c.epoch++
	c.state = Hydrating
	c.fetching = false
	c.draft = models.Draft{}
	c.lastErr = nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Draft returns a copy of the current draft. In Viewing it mirrors the
// identity context; in Hydrating there is none.
func (c *Controller) Draft() (models.Draft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draftLocked()
}

func (c *Controller) draftLocked() (models.Draft, bool) {
	switch c.state {
	case Viewing:
		id, ok := c.identity.Current()
		if !ok {
			return models.Draft{}, false
		}
		return models.DraftFrom(id), true
	case Editing, Saving, SaveFailed:
		return c.draft.Clone(), true
	default:
		return models.Draft{}, false
	}
}

// View is the render model of the profile page.
type View struct {
	State       State
	Loaded      bool
	Name        string
	Email       string
	ImageSource string
	Editable    bool
	Pending     bool

	// Notice is the user-facing text of the last upload or update failure.
	Notice string
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{State: c.state, Editable: c.state.editable()}
	d, ok := c.draftLocked()
	if ok {
		v.Loaded = true
		v.Name = d.Name
		v.Email = d.Email
		v.ImageSource = d.ImageSource()
		v.Pending = d.Pending != nil
	}
	if c.state == SaveFailed && c.lastErr != nil {
		v.Notice = notice(c.lastErr)
	}
	return v
}

func notice(err error) string {
	switch {
	case errors.Is(err, ErrUploadFailed):
		return "Image upload failed: " + client.UserMessage(err)
	case errors.Is(err, ErrUpdateFailed):
		return "Profile update failed: " + client.UserMessage(err)
	default:
		return client.UserMessage(err)
	}
}

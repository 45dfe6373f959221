package sketch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/sketch/page"
)

// Pages returns the open pages in order. Only pages other than the
// current one carry up-to-date data; the current page lives on the surface.
func (s *Session) Pages() []page.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages.Pages()
}

// CurrentPage returns the index of the current page.
func (s *Session) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages.CurrentIndex()
}

// SavedNames lists the names of the pages in storage.
func (s *Session) SavedNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names, err := s.saved.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("sketch: list saved pages: %w", err)
	}
	return names, nil
}

func (s *Session) newPage(ctx context.Context) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	p, err := s.pages.Create(s.surf)
	if err != nil {
		return fmt.Errorf("sketch: new page: %w", err)
	}
	Logger().Info("page created", "id", string(p.ID), "name", p.Name)
	return s.blank()
}

func (s *Session) selectPage(ctx context.Context, i int) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	p, err := s.pages.Select(i, s.surf)
	if err != nil {
		return s.pageRefused(err)
	}
	Logger().Info("page selected", "index", i, "name", p.Name)
	return s.load(ctx, p)
}

func (s *Session) deletePage(ctx context.Context, i int) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	p, err := s.pages.Delete(i, s.surf)
	if err != nil {
		return s.pageRefused(err)
	}
	Logger().Info("page deleted", "index", i, "current", s.pages.CurrentIndex())
	return s.load(ctx, p)
}

func (s *Session) savePage(ctx context.Context, name string, overwrite bool) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	name, err := page.CleanName(name)
	if err != nil {
		return s.pageRefused(err)
	}
	if err := s.pages.Persist(s.surf); err != nil {
		return fmt.Errorf("sketch: save page: %w", err)
	}

	r := s.pages.Current().Record()
	r.Name = name
	if err := s.saved.Save(ctx, r, overwrite); err != nil {
		return s.pageRefused(err)
	}
	if err := s.pages.Rename(s.pages.CurrentIndex(), name); err != nil {
		return fmt.Errorf("sketch: save page: %w", err)
	}
	s.notify(Notice{Level: LevelInfo, Kind: NoticeSaved, Message: fmt.Sprintf("saved %q", name)})
	return nil
}

func (s *Session) openPage(ctx context.Context, name string) error {
	if err := s.finishGesture(ctx); err != nil {
		return err
	}
	name, err := page.CleanName(name)
	if err != nil {
		return s.pageRefused(err)
	}
	r, err := s.saved.Find(ctx, name)
	if err != nil {
		return s.pageRefused(err)
	}

	// A saved page that is already open is selected, keeping its unsaved
	// edits.
	if i := s.pages.IndexOfID(r.ID); i >= 0 {
		p, err := s.pages.Select(i, s.surf)
		if err != nil {
			return s.pageRefused(err)
		}
		Logger().Info("page opened", "name", name, "index", i)
		return s.load(ctx, p)
	}

	p, err := s.pages.Append(r.Page(), s.surf)
	if err != nil {
		return fmt.Errorf("sketch: open page: %w", err)
	}
	Logger().Info("page opened", "name", name, "index", s.pages.CurrentIndex())
	return s.load(ctx, p)
}

// load shows p on the surface and restarts the history from it. A page
// whose data cannot be decoded is shown blank.
func (s *Session) load(ctx context.Context, p page.Page) error {
	if p.Data.IsZero() {
		return s.blank()
	}

	s.surf.Clear(Background)
	if err := s.restore(ctx, p.Data); err != nil {
		if berr := s.blank(); berr != nil {
			return berr
		}
		return s.restoreFailed(err, fmt.Sprintf("cannot restore page %q", p.Name))
	}
	// The stored raster may not cover the whole surface.
	shown, err := s.surf.Capture()
	if err != nil {
		return fmt.Errorf("sketch: capture page %q: %w", p.Name, err)
	}
	s.ledger.Reset(shown)
	s.dirty = false
	return nil
}

// pageRefused reports page and collection refusals as notices and returns
// every other error.
func (s *Session) pageRefused(err error) error {
	var kind NoticeKind
	switch {
	case errors.Is(err, page.ErrSolePage):
		kind = NoticeSolePage
	case errors.Is(err, page.ErrOutOfRange):
		kind = NoticeOutOfRange
	case errors.Is(err, page.ErrNotFound):
		kind = NoticeNotFound
	case errors.Is(err, page.ErrNameExists):
		kind = NoticeNameExists
	case errors.Is(err, page.ErrEmptyName):
		kind = NoticeEmptyName
	default:
		return fmt.Errorf("sketch: %w", err)
	}
	s.refuse(kind, err.Error(), err)
	return nil
}

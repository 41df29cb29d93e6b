package live

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/carousel"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/view"
)

func startLiveServer(t *testing.T, a *app.App, opts Options) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(a, opts).RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/live"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readMsg(t *testing.T, ws *websocket.Conn) Outbound {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(3 * time.Second))
	var msg Outbound
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestLiveSessionOverWebsocket(t *testing.T) {
	a := loadedApp(t)
	ts := startLiveServer(t, a, Options{Session: SessionConfig{Breakpoints: carousel.DefaultBreakpoints()}})
	ws := dial(t, ts)

	ready := readMsg(t, ws)
	if ready.Type != MsgReady || ready.Session == "" || ready.Snapshot != a.Current().ID {
		t.Fatalf("first message = %+v, want ready for current snapshot", ready)
	}

	if err := ws.WriteJSON(Inbound{Type: EventInit, Width: 1200, CardCount: 2, CardWidth: 300, CardMargin: 20}); err != nil {
		t.Fatal(err)
	}
	msg := readMsg(t, ws)
	if msg.Type != MsgCarousel || msg.Carousel == nil {
		t.Fatalf("got %+v, want carousel", msg)
	}
	if msg.Carousel.State.TotalPages != 1 || msg.Carousel.NextEnabled || msg.Carousel.Progress != 100 {
		t.Errorf("carousel = %+v", msg.Carousel)
	}

	if err := ws.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatal(err)
	}
	if msg := readMsg(t, ws); msg.Type != MsgError {
		t.Errorf("got %+v, want error", msg)
	}

	if err := ws.WriteJSON(Inbound{Type: EventHover, Widget: "gallery"}); err != nil {
		t.Fatal(err)
	}
	if msg := readMsg(t, ws); msg.Type != MsgError || !strings.Contains(msg.Error, "gallery") {
		t.Errorf("got %+v, want unknown widget error", msg)
	}
}

func TestLiveSessionReceivesReload(t *testing.T) {
	a := loadedApp(t)
	ts := startLiveServer(t, a, Options{})
	ws := dial(t, ts)

	first := readMsg(t, ws)
	if first.Type != MsgReady {
		t.Fatalf("first message = %+v", first)
	}

	snap, err := a.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	msg := readMsg(t, ws)
	if msg.Type != MsgReload || msg.Snapshot != snap.ID {
		t.Errorf("got %+v, want reload to %s", msg, snap.ID)
	}
}

func TestLiveSessionIsRecorded(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { database.Close() })
	store := history.NewStore(database)

	a := loadedApp(t)
	ts := startLiveServer(t, a, Options{History: store})
	ws := dial(t, ts)

	ready := readMsg(t, ws)
	ws.WriteJSON(Inbound{Type: EventNext})
	ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	deadline := time.Now().Add(3 * time.Second)
	for {
		s, err := store.GetSession(context.Background(), ready.Session)
		if err == nil && s.EndedAt != nil {
			if s.SnapshotID != a.Current().ID {
				t.Errorf("session snapshot = %q", s.SnapshotID)
			}
			if s.Events != 1 {
				t.Errorf("events = %d, want 1", s.Events)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("session not closed in history: %+v, %v", s, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// nextCarousel reads until a carousel message arrives.
func nextCarousel(t *testing.T, ws *websocket.Conn) *CarouselView {
	t.Helper()
	for {
		if msg := readMsg(t, ws); msg.Type == MsgCarousel {
			return msg.Carousel
		}
	}
}

func TestResizeBurstKeepsFinalViewport(t *testing.T) {
	a := loadedApp(t)
	ts := startLiveServer(t, a, Options{
		Session:         SessionConfig{Breakpoints: carousel.DefaultBreakpoints()},
		EventsPerSecond: 1,
	})
	ws := dial(t, ts)
	readMsg(t, ws)

	if err := ws.WriteJSON(Inbound{Type: EventInit, Width: 1200, CardCount: 7, CardWidth: 300, CardMargin: 20}); err != nil {
		t.Fatal(err)
	}
	if v := nextCarousel(t, ws); v.State.CardsPerPage != 3 {
		t.Fatalf("initial carousel = %+v", v.State)
	}

	for w := 1200; w > 1080; w-- {
		if err := ws.WriteJSON(Inbound{Type: EventResize, Width: float64(w), CardCount: 7, CardWidth: 300, CardMargin: 20}); err != nil {
			t.Fatal(err)
		}
	}
	if err := ws.WriteJSON(Inbound{Type: EventResize, Width: 500, CardCount: 7, CardWidth: 300, CardMargin: 20}); err != nil {
		t.Fatal(err)
	}

	// A slow writer may let the debounce fire mid-burst; those recomputations
	// still see a three-per-page width.
	st := nextCarousel(t, ws).State
	for st.CardsPerPage == 3 {
		st = nextCarousel(t, ws).State
	}
	if st.CardsPerPage != 1 || st.TotalPages != 7 || st.CurrentPage != 0 {
		t.Errorf("carousel after burst = %+v, want 1 per page over 7 pages", st)
	}
}

func TestLeaveAppliedWhenOverRate(t *testing.T) {
	a := loadedApp(t)
	ts := startLiveServer(t, a, Options{EventsPerSecond: 1})
	ws := dial(t, ts)
	readMsg(t, ws)

	for i := 0; i < 10; i++ {
		if err := ws.WriteJSON(Inbound{Type: EventHover, Widget: view.WidgetCatalog, Index: 0}); err != nil {
			t.Fatal(err)
		}
	}
	if err := ws.WriteJSON(Inbound{Type: EventLeave, Widget: view.WidgetCatalog, Index: 0}); err != nil {
		t.Fatal(err)
	}

	for {
		msg := readMsg(t, ws)
		if msg.Type != MsgTooltip {
			t.Fatalf("got %+v, want tooltip", msg)
		}
		if !msg.Tooltip.Visible {
			return
		}
	}
}

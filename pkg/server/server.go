// Package server runs a game behind HTTP: a JSON state endpoint, an intent
// endpoint and a websocket that streams snapshots and accepts intents.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	engineinput "puzzlerooms/pkg/engine/input"
	"puzzlerooms/pkg/game/devtools"
	"puzzlerooms/pkg/game/gameplay"
	"puzzlerooms/pkg/game/renderer"
	"puzzlerooms/pkg/game/state"
)

// Routes
const (
	URIState      = "/state"
	URIIntent     = "/intent"
	URIPlay       = "/play"
	URIScreenshot = "/screenshot"
)

const requestTimeout = 2 * time.Second

// ErrStopped is returned when the game loop is no longer running
var ErrStopped = errors.New("game loop stopped")

// Options tune a Server
type Options struct {
	// TickRate is simulation ticks per second
	TickRate int
	Log      logrus.FieldLogger
}

// IntentMessage is the wire form of an intent. Code is any input binding
// ("toggle", "clear", "run", "restore", "preview", "edit", ...).
type IntentMessage struct {
	Code string `json:"code"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Intent maps the message through the input bindings
func (m IntentMessage) Intent() engineinput.Intent {
	raw := engineinput.RawInput{Device: engineinput.DeviceNetwork, Code: m.Code, Timestamp: time.Now()}
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)).At(m.Row, m.Col)
}

// IntentReply is returned for every intent
type IntentReply struct {
	Changed  bool              `json:"changed"`
	Snapshot renderer.Snapshot `json:"snapshot"`
}

type intentRequest struct {
	intent engineinput.Intent
	reply  chan IntentReply
}

type subscriber struct {
	frames chan renderer.Snapshot
}

// send replaces any frame the subscriber has not picked up yet
func (sub *subscriber) send(snap renderer.Snapshot) {
	select {
	case <-sub.frames:
	default:
	}
	sub.frames <- snap
}

// Server owns a game. Only the Loop goroutine touches it; handlers talk to
// the loop over channels.
type Server struct {
	router   *way.Router
	game     *state.Game
	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	tickEvery time.Duration

	intents     chan intentRequest
	calls       chan func(g *state.Game)
	subscribe   chan *subscriber
	unsubscribe chan *subscriber
	done        chan struct{}
}

// New creates a server for g. Call Loop before serving requests.
func New(g *state.Game, opts Options) *Server {
	rate := opts.TickRate
	if rate <= 0 {
		rate = 30
	}
	log := opts.Log
	if log == nil {
		log = g.Log
	}

	s := &Server{
		game:        g,
		log:         log.WithField("component", "server"),
		tickEvery:   time.Second / time.Duration(rate),
		intents:     make(chan intentRequest),
		calls:       make(chan func(g *state.Game)),
		subscribe:   make(chan *subscriber),
		unsubscribe: make(chan *subscriber),
		done:        make(chan struct{}),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, URIState, s.handleState())
	s.router.HandleFunc(http.MethodPost, URIIntent, s.handleIntent())
	s.router.HandleFunc(http.MethodGet, URIPlay, s.handlePlay())
	s.router.HandleFunc(http.MethodGet, URIScreenshot, s.handleScreenshot())
}

// ServeHTTP dispatches to the routes
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Loop runs the game until ctx is cancelled: it ticks the simulation, applies
// intents in arrival order and pushes a snapshot to every websocket whenever
// the game changes.
func (s *Server) Loop(ctx context.Context) {
	s.log.WithField("tick", s.tickEvery).Info("game loop starting")
	ticker := time.NewTicker(s.tickEvery)
	defer ticker.Stop()

	dt := float32(s.tickEvery.Seconds())
	subs := make(map[*subscriber]struct{})
	lastRev := s.game.Revision

	defer func() {
		for sub := range subs {
			close(sub.frames)
		}
		close(s.done)
		s.log.Info("game loop stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			outcome, err := gameplay.Tick(s.game, dt)
			if err != nil {
				s.log.WithError(err).Error("tick failed")
			} else if outcome != gameplay.OutcomeIdle && outcome != gameplay.OutcomeWalking {
				s.log.WithField("outcome", outcome.String()).Debug("run settled")
			}

		case req := <-s.intents:
			changed := gameplay.ProcessIntent(s.game, req.intent)
			req.reply <- IntentReply{Changed: changed, Snapshot: renderer.BuildSnapshot(s.game)}

		case fn := <-s.calls:
			fn(s.game)

		case sub := <-s.subscribe:
			subs[sub] = struct{}{}
			sub.send(renderer.BuildSnapshot(s.game))
			s.log.WithField("subscribers", len(subs)).Info("websocket joined")

		case sub := <-s.unsubscribe:
			if _, ok := subs[sub]; ok {
				delete(subs, sub)
				close(sub.frames)
			}
			s.log.WithField("subscribers", len(subs)).Info("websocket left")
		}

		if s.game.Revision != lastRev {
			lastRev = s.game.Revision
			if len(subs) > 0 {
				snap := renderer.BuildSnapshot(s.game)
				for sub := range subs {
					sub.send(snap)
				}
			}
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to return. fn must not
// keep g.
func (s *Server) Do(ctx context.Context, fn func(g *state.Game)) error {
	finished := make(chan struct{})
	call := func(g *state.Game) {
		defer close(finished)
		fn(g)
	}
	select {
	case s.calls <- call:
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-finished
	return nil
}

// Snapshot asks the loop for the current snapshot
func (s *Server) Snapshot(ctx context.Context) (renderer.Snapshot, error) {
	var snap renderer.Snapshot
	err := s.Do(ctx, func(g *state.Game) { snap = renderer.BuildSnapshot(g) })
	return snap, err
}

// Submit hands an intent to the loop and waits for the result
func (s *Server) Submit(ctx context.Context, intent engineinput.Intent) (IntentReply, error) {
	req := intentRequest{intent: intent, reply: make(chan IntentReply, 1)}
	select {
	case s.intents <- req:
	case <-s.done:
		return IntentReply{}, ErrStopped
	case <-ctx.Done():
		return IntentReply{}, ctx.Err()
	}
	return <-req.reply, nil
}

func (s *Server) handleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		snap, err := s.Snapshot(ctx)
		if err != nil {
			s.log.WithError(err).Warn("state request failed")
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) handleIntent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg IntentMessage
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&msg); err != nil {
			http.Error(w, "invalid intent: "+err.Error(), http.StatusBadRequest)
			return
		}
		intent := msg.Intent()
		if intent.Action == engineinput.ActionNone {
			http.Error(w, "unknown intent code "+msg.Code, http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		reply, err := s.Submit(ctx, intent)
		if err != nil {
			s.log.WithError(err).Warn("intent request failed")
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		s.log.WithFields(logrus.Fields{"code": msg.Code, "changed": reply.Changed}).Debug("intent applied")
		writeJSON(w, http.StatusOK, reply)
	}
}

func (s *Server) handleScreenshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		var page bytes.Buffer
		err := s.Do(ctx, func(g *state.Game) {
			if werr := devtools.WriteScreenshotHTML(&page, g); werr != nil {
				s.log.WithError(werr).Warn("screenshot failed")
			}
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = page.WriteTo(w)
	}
}

func (s *Server) handlePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		sub := &subscriber{frames: make(chan renderer.Snapshot, 1)}
		select {
		case s.subscribe <- sub:
		case <-s.done:
			return
		}

		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for snap := range sub.frames {
				if err := conn.WriteJSON(snap); err != nil {
					s.log.WithError(err).Debug("websocket write failed")
					return
				}
			}
		}()

		for {
			var msg IntentMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.log.WithError(err).Debug("websocket read ended")
				}
				break
			}
			intent := msg.Intent()
			if intent.Action == engineinput.ActionNone {
				s.log.WithField("code", msg.Code).Debug("ignoring unknown intent code")
				continue
			}
			if _, err := s.Submit(r.Context(), intent); err != nil {
				break
			}
		}

		select {
		case s.unsubscribe <- sub:
		case <-s.done:
		}
		conn.Close()
		<-writerDone
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

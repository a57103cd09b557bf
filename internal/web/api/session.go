package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/i18n"
	"github.com/lonng/muscore/pkg/constant"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/room"
	"github.com/lonng/muscore/protocol"
	"github.com/lonng/nex"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithField("component", "api")

type sessionService struct {
	manager *game.Manager
}

// MakeSessionService serves the score sheets kept by m.
func MakeSessionService(m *game.Manager, limiter *Limiter) http.Handler {
	s := &sessionService{manager: m}
	limit := limiter.Before()

	router := mux.NewRouter()
	router.Handle("/v1/session", nex.Handler(s.start).Before(limit)).Methods("POST")                            //开局
	router.Handle("/v1/session/number/{no}", nex.Handler(s.byNumber)).Methods("GET")                            //按桌号查询
	router.Handle("/v1/session/{id}", nex.Handler(s.view)).Methods("GET")                                       //当前积分表
	router.Handle("/v1/session/{id}", nex.Handler(s.reset).Before(limit)).Methods("DELETE")                     //重新开始
	router.Handle("/v1/session/{id}/round", nex.Handler(s.addRound).Before(limit)).Methods("POST")              //新增一轮
	router.Handle("/v1/session/{id}/round/{index}", nex.Handler(s.updateRound).Before(limit)).Methods("PUT")    //修改一轮
	router.Handle("/v1/session/{id}/round/{index}", nex.Handler(s.removeRound).Before(limit)).Methods("DELETE") //删除一轮
	router.Handle("/v1/session/{id}/subtotals", nex.Handler(s.subtotals)).Methods("GET")
	router.Handle("/v1/session/{id}/sheet", nex.Handler(s.sheet)).Methods("GET") //打印
	router.NotFoundHandler = nex.Handler(badRoute)
	return router
}

func badRoute() (*protocol.None, error) {
	return nil, errutil.ErrBadRoute
}

func sessionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		return "", errutil.ErrInvalidParameter
	}
	return id, nil
}

func roundIndex(r *http.Request) (int, error) {
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return 0, errutil.ErrInvalidParameter
	}
	return i, nil
}

func (ss *sessionService) start(r *http.Request, req *protocol.StartRequest) (*protocol.SessionView, error) {
	s, err := ss.manager.Start(req.Players)
	if err != nil {
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

func (ss *sessionService) view(r *http.Request) (*protocol.SessionView, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	s, err := ss.manager.View(id)
	if err != nil {
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

func (ss *sessionService) byNumber(r *http.Request) (*protocol.SessionView, error) {
	no := strings.TrimSpace(mux.Vars(r)["no"])
	if no == "" {
		return nil, errutil.ErrInvalidParameter
	}
	s, err := ss.manager.ByNumber(room.Number(no))
	if err != nil {
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

func (ss *sessionService) reset(r *http.Request) (*protocol.StringMessage, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	if err := ss.manager.Reset(id); err != nil {
		return nil, err
	}
	return protocol.SuccessMessage, nil
}

func (ss *sessionService) addRound(r *http.Request, req *protocol.AddRoundRequest) (*protocol.SessionView, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	kind, ok := constant.ParseRoundKind(req.Kind)
	if !ok {
		return nil, errutil.ErrInvalidParameter
	}
	s, err := ss.manager.AddRound(id, kind)
	if err != nil {
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

func (ss *sessionService) updateRound(r *http.Request, req *protocol.UpdateRoundRequest) (*protocol.SessionView, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	i, err := roundIndex(r)
	if err != nil {
		return nil, err
	}

	s, err := ss.manager.Mutate(id, func(s *game.Session) error {
		return updateRound(s, i, req.Field, req.Value)
	})
	if err != nil {
		logger.Debugf("round update rejected, id=%s round=%d field=%s error=%v", id, i, req.Field, err)
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

func (ss *sessionService) removeRound(r *http.Request) (*protocol.SessionView, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	i, err := roundIndex(r)
	if err != nil {
		return nil, err
	}
	s, err := ss.manager.RemoveRound(id, i)
	if err != nil {
		return nil, err
	}
	return NewSessionView(i18n.ForRequest(r), s), nil
}

// subtotals returns the running totals after round upto, the last round
// by default.
func (ss *sessionService) subtotals(r *http.Request, form *nex.Form) (*protocol.SubtotalsResponse, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	s, err := ss.manager.View(id)
	if err != nil {
		return nil, err
	}

	upto := form.IntOrDefault("upto", len(s.Rounds)-1)
	return &protocol.SubtotalsResponse{
		Upto:      upto,
		Subtotals: s.Subtotals(upto),
	}, nil
}

func (ss *sessionService) sheet(r *http.Request) (*protocol.SheetView, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}
	s, err := ss.manager.View(id)
	if err != nil {
		return nil, err
	}
	return NewSheetView(i18n.ForRequest(r), s.Sheet()), nil
}

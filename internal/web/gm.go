package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/web/api"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/whitelist"
	"github.com/lonng/muscore/protocol"
	"github.com/lonng/nex"
)

func authFilter(ctx context.Context, r *http.Request) (context.Context, error) {
	if !whitelist.VerifyIP(r.RemoteAddr) {
		logger.Warnf("gm access denied, RemoteAddr=%s URL=%s", r.RemoteAddr, r.RequestURI)
		return ctx, errutil.ErrPermissionDenied
	}
	return ctx, nil
}

type gmService struct {
	manager *game.Manager
}

func (gm *gmService) sessions() (*protocol.SessionListResponse, error) {
	list := gm.manager.List()
	summaries := make([]protocol.SessionSummary, len(list))
	for i, s := range list {
		summaries[i] = api.NewSessionSummary(s)
	}
	return &protocol.SessionListResponse{
		Total:    len(summaries),
		Sessions: summaries,
	}, nil
}

func (gm *gmService) reset(query *nex.Form) (*protocol.StringMessage, error) {
	id := strings.TrimSpace(query.Get("id"))
	if id == "" {
		return nil, errutil.ErrIllegalParameter
	}
	logger.Infof("手动结束牌局: id=%s", id)
	if err := gm.manager.Reset(id); err != nil {
		return nil, err
	}
	return protocol.SuccessMessage, nil
}

func (gm *gmService) sweep() (*protocol.SweepResponse, error) {
	n := gm.manager.Sweep()
	logger.Infof("手动清理过期牌局: count=%d", n)
	return &protocol.SweepResponse{Removed: n}, nil
}

package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lonng/muscore/internal/game"
	"github.com/lonng/muscore/internal/scoring"
	"github.com/lonng/muscore/internal/web/api"
	"github.com/lonng/muscore/pkg/algoutil"
	"github.com/lonng/muscore/pkg/errutil"
	"github.com/lonng/muscore/pkg/whitelist"
	"github.com/lonng/muscore/protocol"
	"github.com/lonng/nex"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "http")

func init() {
	nex.SetErrorEncoder(encodeError)
}

// encodeError 将错误转为客户端可识别的错误码, 请求体解析失败统一视为参数错误
func encodeError(err error) interface{} {
	cause := errors.Cause(err)
	switch cause.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		cause = errutil.ErrInvalidParameter
	}
	switch cause {
	case io.EOF, io.ErrUnexpectedEOF, scoring.ErrBadSeat, scoring.ErrUnknownTrump:
		cause = errutil.ErrInvalidParameter
	}

	code := errutil.Code(cause)
	if code == errutil.Unknown {
		logger.Errorf("unexpected error: %v", err)
		cause, code = errutil.ErrServerInternal, errutil.Code(errutil.ErrServerInternal)
	}
	return &protocol.ErrorResponse{
		Code:  code,
		Error: cause.Error(),
	}
}

func notFound() (*protocol.None, error) {
	return nil, errutil.ErrNotFound
}

func enableWhiteList() {
	if err := whitelist.Setup(viper.GetStringSlice("whitelist.ip")); err != nil {
		logger.Errorf("bad whitelist: %v", err)
	}
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

// NewHandler routes the whole API to the sessions kept by m.
func NewHandler(m *game.Manager, limiter *api.Limiter, webDir string) http.Handler {
	var (
		mux      = http.NewServeMux()
		sessions = api.MakeSessionService(m, limiter)
		rules    = api.MakeRulesService(limiter)
		gm       = &gmService{manager: m}
	)

	mux.Handle("/v1/session", sessions)
	mux.Handle("/v1/session/", sessions)
	mux.Handle("/v1/rules/", rules)
	mux.Handle("/v1/score", rules)

	// GM系统命令
	mux.Handle("/v1/gm/sessions", nex.Handler(gm.sessions).Before(authFilter)) // 当前所有牌局
	mux.Handle("/v1/gm/reset", nex.Handler(gm.reset).Before(authFilter))       // 强制结束牌局
	mux.Handle("/v1/gm/sweep", nex.Handler(gm.sweep).Before(authFilter))       // 清理过期牌局

	if webDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(webDir))))
	}
	mux.Handle("/ping", nex.Handler(pongHandler))
	mux.Handle("/", nex.Handler(notFound))

	return algoutil.AccessControl(algoutil.OptionControl(mux))
}

func Startup() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// enable white list
	enableWhiteList()
	nex.Before(logRequest)

	var (
		addr      = viper.GetString("webserver.addr")
		cert      = viper.GetString("webserver.certificates.cert")
		key       = viper.GetString("webserver.certificates.key")
		enableSSL = viper.GetBool("webserver.enable_ssl")
		webDir    = viper.GetString("webserver.static_dir")
		limiter   = api.NewLimiter(viper.GetFloat64("webserver.rate_limit"), viper.GetInt("webserver.rate_burst"))
	)

	manager := game.Startup(ctx)
	server := &http.Server{
		Addr:    addr,
		Handler: NewHandler(manager, limiter, webDir),
	}

	logger.Infof("Web service addr: %s(enable ssl: %v)", addr, enableSSL)
	go func() {
		// http service
		var err error
		if enableSSL {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	s := <-sg
	log.Infof("got signal: %s", s.String())

	shutdown, done := context.WithTimeout(ctx, 5*time.Second)
	defer done()
	if err := server.Shutdown(shutdown); err != nil {
		logger.Errorf("shutdown: %v", err)
	}
}

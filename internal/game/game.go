package game

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var logger = log.WithField("component", "game")

// Startup 根据配置创建会话管理器, 并启动过期会话清理
func Startup(ctx context.Context) *Manager {
	ttl := viper.GetDuration("core.session_ttl")
	strict := viper.GetBool("core.strict_append")

	interval := ttl / 10
	if interval < time.Second {
		interval = time.Second
	}
	if interval > defaultSweepInterval {
		interval = defaultSweepInterval
	}

	logger.Infof("session ttl: %s, strict append: %t", ttl, strict)

	m := NewManager(
		SessionTTL(ttl),
		StrictAppend(strict),
		SweepInterval(interval),
	)
	m.Run(ctx)
	return m
}

package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/lonng/muscore/internal/hooks"
	"github.com/lonng/muscore/internal/web"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "muscore"
	app.Author = "muscore"
	app.Version = "0.1.0"
	app.Usage = "score keeper for the card game Mü"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the http service",
			Action: serve,
		},
		{
			Name:  "rules",
			Usage: "print the bid targets for a player count",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "players, n", Value: 4, Usage: "number of players (3-6)"},
				cli.StringFlag{Name: "lang", Usage: "output language"},
			},
			Action: rules,
		},
		{
			Name:      "score",
			Usage:     "score a game read from a JSON document",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "lang", Usage: "output language"},
			},
			Action: score,
		},
	}

	app.Before = setup
	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 读取配置并初始化日志
func setup(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	viper.SetEnvPrefix("muscore")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		log.Warn(errors.Wrap(err, "read config"))
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook(log.DebugLevel, log.WarnLevel, log.ErrorLevel, log.FatalLevel, log.PanicLevel))
	}
	return nil
}

func serve(c *cli.Context) error {
	if c.GlobalBool("cpuprofile") || c.Bool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			return errors.Wrap(err, "cpu profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	web.Startup() // 开启web服务器, 直到收到退出信号
	return nil
}

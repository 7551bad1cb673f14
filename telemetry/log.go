package telemetry

import (
	"net"
	"os"
	"time"

	"github.com/5urf/carrot-challenge/config"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HandlerStartTime is the echo context key under which handlers stash their
// start time so request latency can be computed at log time.
const HandlerStartTime = "HANDLER_START_TIME"

// Logger wraps zerolog so that handlers can emit one enriched event per
// request and infrastructure code can log free-standing events.
type Logger interface {
	Log(ctx echo.Context, err error) *zerolog.Event
	Info() *zerolog.Event
	Debug() *zerolog.Event
	Err(err error) *zerolog.Event
}

type logger struct {
	logger zerolog.Logger
	env    config.Environment
}

func ZLogger(env config.Environment, cfg config.Telemetry) Logger {
	return &logger{
		logger: setupLogger(cfg.Logging),
		env:    env,
	}
}

func setupLogger(cfg config.Logging) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	l := zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	logLevel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if cfg.Pretty {
		l = l.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	return l
}

func (l *logger) Log(ctx echo.Context, errMsg error) *zerolog.Event {
	stop := time.Now()
	start, ok := ctx.Get(HandlerStartTime).(time.Time)
	if !ok {
		start = stop
	}
	req := ctx.Request()
	res := ctx.Response()

	level := zerolog.InfoLevel
	if res.Status >= 400 {
		level = zerolog.ErrorLevel
	}

	event := l.
		logger.
		WithLevel(level).
		IPAddr("remote_ip", net.ParseIP(ctx.RealIP())).
		Str("host", req.Host).
		Str("uri", req.RequestURI).
		Str("method", req.Method).
		Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
		Int("status", res.Status).
		Dur("latency", stop.Sub(start)).
		Int64("bytes_out", res.Size)

	if errMsg != nil {
		event = event.Err(errMsg)
	}

	return event
}

func (l *logger) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

func (l *logger) Err(err error) *zerolog.Event {
	return l.logger.Err(err)
}

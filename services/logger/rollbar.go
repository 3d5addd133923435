package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/hostela/core"
	"github.com/trezcool/hostela/core/user"
)

// RollbarLogger reports through Rollbar while echoing every entry to a std
// logger, so PROD logs stay greppable on the box.
type RollbarLogger struct {
	std *log.Logger
}

var _ core.Logger = (*RollbarLogger)(nil)

func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	return &RollbarLogger{std: std}
}

func (l RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// prepare shapes variadic args for rollbar: a user.User becomes the reported
// person, errors go through as-is (keeping their stack trace), and alternating
// "key", value pairs fold into a single custom-data map.
func (l RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	var usrSet bool
	custom := make(map[string]interface{})
	newArgs := []interface{}{msg}
	for i := 0; i < len(args); i++ {
		switch arg := args[i].(type) {
		case user.User:
			if !usrSet { // only report one person
				rollbar.SetPerson(arg.ID, arg.Username, arg.Email)
				usrSet = true
			}
		case error:
			newArgs = append(newArgs, arg)
		case string:
			if i+1 < len(args) {
				if err, ok := args[i+1].(error); ok {
					newArgs = append(newArgs, err)
				} else {
					custom[arg] = args[i+1]
				}
				i++
				continue
			}
			newArgs = append(newArgs, arg)
		default:
			newArgs = append(newArgs, arg)
		}
	}
	if !usrSet {
		rollbar.ClearPerson()
	}
	if len(custom) > 0 {
		newArgs = append(newArgs, custom)
	}
	return newArgs
}

func (l RollbarLogger) print(level, msg string, args []interface{}) {
	l.std.Printf("%s: %s", level, msg)
	for _, arg := range args {
		l.std.Printf("%+v", arg)
	}
}

func (l RollbarLogger) Debug(msg string, args ...interface{}) {
	rollbar.Debug(l.prepare(msg, args)...)
	l.print("DEBUG", msg, args)
}

func (l RollbarLogger) Info(msg string, args ...interface{}) {
	rollbar.Info(l.prepare(msg, args)...)
	l.print("INFO", msg, args)
}

func (l RollbarLogger) Warn(msg string, args ...interface{}) {
	rollbar.Warning(l.prepare(msg, args)...)
	l.print("WARN", msg, args)
}

func (l RollbarLogger) Error(msg string, args ...interface{}) {
	rollbar.Error(l.prepare(msg, args)...)
	l.print("ERROR", msg, args)
}

func (l RollbarLogger) Fatal(msg string, args ...interface{}) {
	rollbar.Critical(l.prepare(msg, args)...)
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}

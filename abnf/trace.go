package abnf

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type tracer struct {
	enter string
}

// enterf logs entry into a recognizer rule at trace level. Pair it with exitf
// in a defer; pass pointers to named results so exitf sees their final values.
func enterf(format string, args ...interface{}) tracer {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return tracer{}
	}
	t := tracer{enter: fmt.Sprintf(format, args...)}
	logrus.Tracef("--> %s", t.enter)
	return t
}

func (t tracer) exitf(format string, args ...interface{}) {
	if t.enter == "" {
		return
	}
	for i, arg := range args {
		if v := reflect.ValueOf(arg); v.Kind() == reflect.Ptr && !v.IsNil() {
			args[i] = v.Elem().Interface()
		}
	}
	logrus.Tracef("<-- %s: %s", t.enter, fmt.Sprintf(format, args...))
}

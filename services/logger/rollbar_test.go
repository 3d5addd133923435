package logsvc

import (
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func Test_RollbarLogger_prepare(t *testing.T) {
	l := RollbarLogger{std: log.New(io.Discard, "", 0)}
	boom := errors.New("gateway down")

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{name: "no args", want: []interface{}{"msg"}},
		{
			name: "key-value pairs fold into one map",
			args: []interface{}{"id", "N0001", "attempt", 2},
			want: []interface{}{"msg", map[string]interface{}{"id": "N0001", "attempt": 2}},
		},
		{
			name: "error passes through unwrapped",
			args: []interface{}{boom},
			want: []interface{}{"msg", boom},
		},
		{
			name: "error as a pair value stays a direct arg",
			args: []interface{}{"id", "N0001", "err", boom},
			want: []interface{}{"msg", boom, map[string]interface{}{"id": "N0001"}},
		},
		{
			name: "dangling key passes through",
			args: []interface{}{"lonely"},
			want: []interface{}{"msg", "lonely"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.prepare("msg", tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("prepare() = %v, want %v", got, tt.want)
			}
		})
	}
}

package cli

import (
	"strings"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/spf13/pflag"
)

// frameValue is a --frame flag restricted to the known time frames.
type frameValue struct {
	frame *domain.TimeFrame
}

var _ pflag.Value = (*frameValue)(nil)

func newFrameValue(def domain.TimeFrame, p *domain.TimeFrame) *frameValue {
	*p = def
	return &frameValue{frame: p}
}

func (v *frameValue) String() string {
	if v.frame == nil {
		return ""
	}
	return string(*v.frame)
}

func (v *frameValue) Set(s string) error {
	f, err := domain.ParseTimeFrame(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.frame = f
	return nil
}

func (v *frameValue) Type() string { return "frame" }

// addFrameFlag registers --frame/-f on fs.
func addFrameFlag(fs *pflag.FlagSet, p *domain.TimeFrame, def domain.TimeFrame) {
	fs.VarP(newFrameValue(def, p), "frame", "f", "time frame: week, month, year or all")
}

// sessionTypeValue is a --type flag restricted to timed or guided.
type sessionTypeValue struct {
	typ *domain.SessionType
}

var _ pflag.Value = (*sessionTypeValue)(nil)

func (v *sessionTypeValue) String() string {
	if v.typ == nil {
		return ""
	}
	return string(*v.typ)
}

func (v *sessionTypeValue) Set(s string) error {
	t, err := domain.ParseSessionType(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.typ = t
	return nil
}

func (v *sessionTypeValue) Type() string { return "type" }

package log

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/justsearch/justsearch/filesystem"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeFalse)

		Convey("Emitting is a no-op", func() {
			So(func() { Info("nothing") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)
		So(Enabled(), ShouldBeTrue)

		Convey("Entries land in today's log file", func() {
			Debugf("searching %q", "casa de papel")
			WithFields(logrus.DebugLevel, Fields{"status": 200}, "request")

			path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
			content := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(content, "casa de papel"), ShouldBeTrue)
			So(strings.Contains(content, `"status":200`), ShouldBeTrue)
		})
	})
}

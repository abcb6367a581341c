package command

import (
	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Farewell is printed when a session ends normally.
const Farewell = "Exited safely. Thanks for playing!"

// Greeting is the first thing a new session prints. The tutorial hint only
// appears when the world has a tutorial.
func Greeting(s *session.Session) string {
	msg := "Welcome to ByteCrawl! Type ls to get your bearings."
	if _, err := s.FS.Stat(bytecrawl.TutorialFilePath); err == nil {
		msg += " Run the tutorial program with `./tutorial`."
	}
	return msg
}

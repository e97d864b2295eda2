package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/fatih/color"
)

// palette is the themed color set used to draw a screen.
type palette struct {
	title  *color.Color
	accent *color.Color
	dim    *color.Color
	good   *color.Color
	bad    *color.Color
}

var (
	lightPalette = palette{
		title:  color.New(color.FgBlue, color.Bold),
		accent: color.New(color.FgMagenta),
		dim:    color.New(color.FgBlack),
		good:   color.New(color.FgGreen),
		bad:    color.New(color.FgRed),
	}
	darkPalette = palette{
		title:  color.New(color.FgHiCyan, color.Bold),
		accent: color.New(color.FgHiMagenta),
		dim:    color.New(color.FgHiBlack),
		good:   color.New(color.FgHiGreen),
		bad:    color.New(color.FgHiRed),
	}
)

// Renderer draws application screens to the terminal. All data is passed
// in explicitly; the renderer holds only output and session preferences.
type Renderer struct {
	out  io.Writer
	sess *session.Session
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, sess *session.Session) *Renderer {
	return &Renderer{out: out, sess: sess}
}

func (r *Renderer) pal() palette {
	if r.sess.Theme == session.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

func (r *Renderer) t(k locale.Key) string {
	return locale.T(r.sess.Locale, k)
}

// Clear wipes the screen and homes the cursor.
func (r *Renderer) Clear() {
	fmt.Fprint(r.out, "\033[2J\033[H")
}

func (r *Renderer) header(title string) {
	p := r.pal()
	r.Clear()
	p.title.Fprintln(r.out, title)
	p.dim.Fprintln(r.out, strings.Repeat("─", len([]rune(title))+4))
	fmt.Fprintln(r.out)
}

// Status prints a transient status line under the current screen.
func (r *Renderer) Status(msg string) {
	r.pal().accent.Fprintf(r.out, "» %s\n", msg)
}

// Mic prints the microphone state indicator.
func (r *Renderer) Mic(listening bool) {
	p := r.pal()
	if listening {
		p.good.Fprintln(r.out, "🎤 listening (empty line to stop)")
		return
	}
	p.dim.Fprintln(r.out, "🎤 off (press M to talk)")
}

// Login draws the sign-in screen.
func (r *Renderer) Login(username string) {
	r.header(r.t("login.title"))
	fmt.Fprintf(r.out, "  %s: %s\n", r.t("login.username"), username)
	fmt.Fprintf(r.out, "  %s:\n\n", r.t("login.password"))
	r.pal().dim.Fprintln(r.out, r.t("login.voiceHint"))
}

// Register draws the account creation screen.
func (r *Renderer) Register(username string, role model.Role) {
	r.header(r.t("register.title"))
	fmt.Fprintf(r.out, "  %s: %s\n", r.t("login.username"), username)
	fmt.Fprintf(r.out, "  %s: %s\n\n", r.t("register.role"), role)
	r.pal().dim.Fprintln(r.out, r.t("register.subtitle"))
}

// Tutorial draws one onboarding step.
func (r *Renderer) Tutorial(step, total int, title string) {
	r.header(fmt.Sprintf("%s (%d/%d)", r.t("tutorial.title"), step, total))
	r.pal().accent.Fprintf(r.out, "  %s\n", title)
}

// TeacherDashboard lists the teacher's subjects.
func (r *Renderer) TeacherDashboard(subjects []model.Subject) {
	r.header(r.t("teacher.subjects"))
	if len(subjects) == 0 {
		r.pal().dim.Fprintln(r.out, "  "+r.t("student.noTests"))
		return
	}
	for i, s := range subjects {
		fmt.Fprintf(r.out, "  %d. %s", i+1, s.Name)
		r.pal().dim.Fprintf(r.out, "  (%d questions, %d per test)\n", len(s.Questions), s.QuestionsPerTest)
	}
}

// StudentDashboard lists the tests a student can take.
func (r *Renderer) StudentDashboard(subjects []model.Subject) {
	r.header(r.t("student.availableTests"))
	if len(subjects) == 0 {
		r.pal().dim.Fprintln(r.out, "  "+r.t("student.noTests"))
		return
	}
	for i, s := range subjects {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, s.Name)
	}
}

// AddSubject draws the subject creation form.
func (r *Renderer) AddSubject() {
	r.header(r.t("teacher.addSubject"))
}

// AddQuestion draws the question authoring form.
func (r *Renderer) AddQuestion(subjectName string) {
	r.header(r.t("teacher.addQuestion"))
	if subjectName != "" {
		r.pal().accent.Fprintf(r.out, "  %s\n", subjectName)
	}
}

// Scores draws the per-student report table for one subject.
func (r *Renderer) Scores(subjectName string, reports []model.StudentReport) {
	r.header(r.t("teacher.scores"))
	if subjectName != "" {
		r.pal().accent.Fprintf(r.out, "  %s\n\n", subjectName)
	}
	p := r.pal()
	for _, rep := range reports {
		pct := rep.Percentage()
		c := p.bad
		if pct >= 50 {
			c = p.good
		}
		fmt.Fprintf(r.out, "  %-20s %3d/%-3d ", rep.Student, rep.Correct, rep.Attempted)
		c.Fprintf(r.out, "%d%%\n", pct)
	}
}

// Quiz draws the current question with its four options.
func (r *Renderer) Quiz(q model.Question, index, total int) {
	r.header(fmt.Sprintf("%s %d/%d", r.t("game.question"), index+1, total))
	fmt.Fprintf(r.out, "  %s\n\n", q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprintln(r.out)
	r.pal().dim.Fprintln(r.out, "  [1-4] answer  [Q] question  [O] options  [H] help")
}

// Success draws the test completion screen.
func (r *Renderer) Success() {
	r.header(r.t("game.testComplete"))
	r.pal().good.Fprintln(r.out, "  "+r.t("game.successSummary"))
}

package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/command"
	"github.com/alimostafaali30/audiolearn/internal/config"
	"github.com/alimostafaali30/audiolearn/internal/handler"
	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/quiz"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/router"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/speech"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/alimostafaali30/audiolearn/internal/ui"
	"github.com/rs/zerolog"
)

// capture accumulates one line of typed raw-mode input: form fields and
// dictated utterances while the microphone is on.
type capture struct {
	masked bool
	buf    []rune
	done   func(line string)
}

// App wires the whole application together and runs its single event
// loop. Every handler, timer callback and speech event executes on that
// loop, one task at a time, so handlers never need locks.
type App struct {
	cfg  *config.Config
	st   store.Store
	sess *session.Session
	log  zerolog.Logger

	router   *router.Router
	registry *command.Registry
	listener *speech.Listener
	narrator *speech.Narrator
	rend     *ui.Renderer
	term     *ui.Terminal
	micFeed  io.Writer

	auth     *handler.AuthHandler
	teacher  *handler.TeacherHandler
	student  *handler.StudentHandler
	quiz     *handler.QuizHandler
	tutorial *handler.TutorialHandler

	tasks   chan func()
	quit    chan struct{}
	capture *capture
	micOn   bool
	status  string
	spoken  string
}

// Options carries the injectable edges of the application: terminal,
// speech devices and the writer feeding dictated lines to the recognizer.
// A nil Recognizer means speech input is unavailable; the app still runs
// on keys alone.
type Options struct {
	Terminal   *ui.Terminal
	Recognizer speech.Recognizer
	Synth      speech.Synthesizer
	MicFeed    io.Writer
	FirstRun   bool
}

// New builds the application graph on top of the store.
func New(cfg *config.Config, st store.Store, opts Options, log zerolog.Logger) *App {
	a := &App{
		cfg:      cfg,
		st:       st,
		sess:     session.New(locale.Parse(cfg.Lang), session.Theme(cfg.Theme)),
		log:      log.With().Str("component", "app").Logger(),
		term:     opts.Terminal,
		micFeed:  opts.MicFeed,
		tasks:    make(chan func(), 64),
		quit:     make(chan struct{}),
		registry: command.NewRegistry(locale.Parse(cfg.Lang)),
	}

	a.router = router.New(a.sess, log)
	a.listener = speech.NewListener(opts.Recognizer, log)
	a.narrator = speech.NewNarrator(opts.Synth, cfg.ChunkGap, log)
	a.rend = ui.NewRenderer(a.term.Out(), a.sess)

	rt := quiz.NewRuntime(st, a.sess, nil, log)
	a.auth = handler.NewAuthHandler(st, a.sess, a.router, a, a, log)
	a.teacher = handler.NewTeacherHandler(st, a.sess, a, a, log)
	a.quiz = handler.NewQuizHandler(rt, a.sess, a.router, a, a, a.schedule, cfg.AnswerAdvance, log)
	a.student = handler.NewStudentHandler(st, a.sess, a.quiz, a, a, log)
	a.tutorial = handler.NewTutorialHandler(a.sess, a, a, log)

	a.router.OnTransition(func(from, to session.Screen) {
		a.bindCommands()
		a.render()
	})
	a.quiz.OnRender(a.render)
	a.tutorial.OnFinish(func() { a.router.Navigate(session.ScreenLogin) })

	a.listener.OnResult(a.dispatch)
	a.listener.OnState(func(s speech.State) {
		if s != speech.StateListening && a.micOn {
			a.micOn = false
			a.capture = nil
			a.render()
		}
	})
	if opts.FirstRun {
		a.sess.Screen = session.ScreenTutorial
	}
	return a
}

// Post queues fn onto the event loop.
func (a *App) Post(fn func()) {
	select {
	case a.tasks <- fn:
	case <-a.quit:
	}
}

// schedule fires fn on the event loop after d. Injected into the quiz
// handler so the answer-advance delay runs through the same loop.
func (a *App) schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, func() { a.Post(fn) })
}

// Speak narrates text, remembering it for the "repeat" command.
func (a *App) Speak(text string) {
	a.spoken = text
	a.narrator.Speak(text)
}

// Speaking reports whether narration is in flight.
func (a *App) Speaking() bool {
	return a.narrator.Speaking()
}

// Notify sets the status line and redraws.
func (a *App) Notify(text string) {
	a.status = text
	a.render()
}

// Run starts the input goroutines and processes events until the user
// quits or stdin closes.
func (a *App) Run() error {
	if a.listener.Available() {
		go func() {
			for ev := range a.listener.Events() {
				ev := ev
				a.Post(func() { a.listener.HandleEvent(ev) })
			}
		}()
	}
	go a.term.ReadLoop()

	a.bindCommands()
	a.render()
	if a.sess.Screen == session.ScreenTutorial {
		a.tutorial.Begin()
	} else {
		a.Speak(locale.T(a.sess.Locale, "welcome"))
	}

	keys := a.term.Runes()
	for {
		select {
		case fn := <-a.tasks:
			fn()
		case r, ok := <-keys:
			if !ok {
				a.shutdown()
				return nil
			}
			if a.handleRune(r) {
				a.shutdown()
				return nil
			}
		}
	}
}

func (a *App) shutdown() {
	close(a.quit)
	a.narrator.Stop()
	_ = a.listener.Stop()
	a.log.Info().Msg("Shutting down")
}

// ─── Input ───────────────────────────────────────────────────────────────

// handleRune routes one keystroke. It reports whether the app should exit.
func (a *App) handleRune(r rune) bool {
	if r == 3 { // Ctrl+C
		return true
	}
	if a.capture != nil {
		a.captureRune(r)
		return false
	}

	switch r {
	case '1', '2', '3', '4':
		a.handleNumber(int(r - '1'))
	case 'q':
		if a.sess.Screen == session.ScreenQuiz {
			a.quiz.PlayQuestion()
		}
	case 'o':
		if a.sess.Screen == session.ScreenQuiz {
			a.quiz.PlayOptions()
		}
	case 'h':
		a.speakHelp()
	case ' ':
		switch a.sess.Screen {
		case session.ScreenSuccess:
			a.quiz.Restart()
		case session.ScreenTutorial:
			if a.tutorial.Step() == handler.TutorialSteps {
				a.tutorial.Finish()
			} else {
				a.tutorial.Next()
			}
		}
	case 'p':
		if a.sess.Screen == session.ScreenSuccess {
			a.quiz.AddMore()
		}
	case 'm':
		a.toggleMic()
	case 'l':
		a.switchLocale()
	case 't':
		a.switchTheme()
	case '\r', '\n':
		a.startForm()
	}
	return false
}

func (a *App) captureRune(r rune) {
	c := a.capture
	switch r {
	case 3: // Ctrl+C cancels the capture, not the app
		a.capture = nil
		if a.micOn {
			a.endMic()
		}
		a.render()
	case '\r', '\n':
		a.term.Echo('\r')
		a.term.Echo('\n')
		line := string(c.buf)
		a.capture = nil
		c.done(line)
	case 127, 8: // backspace
		if len(c.buf) > 0 {
			c.buf = c.buf[:len(c.buf)-1]
			a.term.EraseLast()
		}
	default:
		if r < 32 {
			return
		}
		c.buf = append(c.buf, r)
		if c.masked {
			a.term.Echo('*')
		} else {
			a.term.Echo(r)
		}
	}
}

func (a *App) startCapture(prompt string, masked bool, done func(string)) {
	a.capture = &capture{masked: masked, done: done}
	fmt.Fprintf(a.term.Out(), "%s: ", prompt)
}

// handleNumber routes the 1-4 keys: answers in a test, list selection on
// the dashboards.
func (a *App) handleNumber(idx int) {
	switch a.sess.Screen {
	case session.ScreenQuiz:
		a.quiz.Answer(idx)
	case session.ScreenStudentDashboard:
		tests := a.student.AvailableTests()
		if idx < len(tests) {
			a.student.StartTest(tests[idx].ID)
		}
	case session.ScreenTeacherDashboard:
		subjects := a.teacher.Subjects()
		if idx < len(subjects) {
			a.sess.SubjectID = subjects[idx].ID
			a.Notify(subjects[idx].Name)
		}
	}
}

func (a *App) speakHelp() {
	switch a.sess.Screen {
	case session.ScreenQuiz:
		a.quiz.PlayInstructions()
	case session.ScreenLogin, session.ScreenRegister:
		a.Speak(locale.T(a.sess.Locale, "login.voiceHint"))
	default:
		a.Speak(locale.T(a.sess.Locale, "tutorial.step3.narration"))
	}
}

// ─── Microphone ──────────────────────────────────────────────────────────

// toggleMic starts or stops dictation. While on, typed lines stand in for
// recognized speech and are fed to the recognizer; an empty line ends the
// session.
func (a *App) toggleMic() {
	if !a.listener.Available() {
		a.announce(response.CodeSpeechUnavailable)
		return
	}
	if a.micOn {
		a.endMic()
		return
	}
	if err := a.listener.Start(); err != nil {
		a.log.Error().Err(err).Msg("Speech start failed")
		a.announce(response.CodeSpeechUnavailable)
		return
	}
	a.micOn = true
	a.render()
	a.armMic()
}

func (a *App) armMic() {
	a.startCapture("🎤", false, func(line string) {
		fmt.Fprintln(a.micFeed, line)
		if line != "" && a.micOn {
			a.armMic()
		}
	})
}

// endMic closes the dictation session. Stopping the listener is safe even
// when the recognizer already ended the session on its own, so a stale mic
// flag cannot wedge the loop.
func (a *App) endMic() {
	a.micOn = false
	a.capture = nil
	_ = a.listener.Stop()
	a.render()
}

// dispatch routes one recognized utterance through the registry.
func (a *App) dispatch(utterance string) {
	res := a.registry.Dispatch(utterance)
	if res.Matched {
		a.log.Debug().Str("pattern", res.Pattern).Str("arg", res.Arg).Msg("Command")
		return
	}
	msg := fmt.Sprintf("%s: %s", response.Message(a.sess.Locale, response.CodeNotRecognized), res.Utterance)
	a.Notify(msg)
	a.Speak(msg)
}

// ─── Preferences ─────────────────────────────────────────────────────────

// switchLocale flips between English and Arabic. Blocked during a test so
// a half-answered question is never re-asked in another language.
func (a *App) switchLocale() {
	if a.sess.InTest() {
		a.announce(response.CodeLocaleSwitchDenied)
		return
	}
	next := locale.AR
	if a.sess.Locale == locale.AR {
		next = locale.EN
	}
	a.sess.Locale = next
	a.registry.SetLocale(next)
	a.log.Info().Str("locale", string(next)).Msg("Locale switched")
	a.render()
	a.Speak(locale.T(next, "welcome"))
}

func (a *App) switchTheme() {
	key := locale.Key("theme.darkEnabled")
	if a.sess.Theme == session.ThemeDark {
		a.sess.Theme = session.ThemeLight
		key = "theme.lightEnabled"
	} else {
		a.sess.Theme = session.ThemeDark
	}
	msg := locale.T(a.sess.Locale, key)
	a.Notify(msg)
	a.Speak(msg)
}

func (a *App) announce(code response.Code) {
	msg := response.Message(a.sess.Locale, code)
	a.Notify(msg)
	a.Speak(msg)
}

// ─── Forms ───────────────────────────────────────────────────────────────

// startForm begins the typed input flow for the current screen.
func (a *App) startForm() {
	switch a.sess.Screen {
	case session.ScreenLogin:
		a.loginForm()
	case session.ScreenRegister:
		a.registerForm()
	case session.ScreenAddSubject:
		a.subjectForm()
	case session.ScreenAddQuestion:
		a.questionForm()
	case session.ScreenTeacherDashboard:
		a.perTestForm()
	}
}

// perTestForm updates the selected subject's per-test question count.
func (a *App) perTestForm() {
	if a.sess.SubjectID == "" {
		a.announce(response.CodeSubjectRequired)
		return
	}
	a.startCapture("per test", false, func(count string) {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			a.announce(response.CodeSubjectDetails)
			return
		}
		if a.teacher.UpdateQuestionsPerTest(a.sess.SubjectID, n) {
			a.render()
		}
	})
}

func (a *App) loginForm() {
	a.startCapture(locale.T(a.sess.Locale, "login.username"), false, func(u string) {
		a.auth.SetUsername(u)
		a.startCapture(locale.T(a.sess.Locale, "login.password"), true, func(p string) {
			a.auth.SetPassword(p)
			a.auth.Login()
		})
	})
}

func (a *App) registerForm() {
	a.startCapture(locale.T(a.sess.Locale, "login.username"), false, func(u string) {
		a.auth.SetUsername(u)
		a.startCapture(locale.T(a.sess.Locale, "login.password"), true, func(p string) {
			a.auth.SetPassword(p)
			a.startCapture(locale.T(a.sess.Locale, "register.role"), false, func(role string) {
				a.auth.SetRole(role)
				a.auth.Register()
			})
		})
	})
}

func (a *App) subjectForm() {
	a.startCapture(locale.T(a.sess.Locale, "teacher.addSubject"), false, func(name string) {
		a.startCapture("per test", false, func(count string) {
			n, _ := strconv.Atoi(strings.TrimSpace(count))
			if _, ok := a.teacher.AddSubject(name, n); ok {
				a.router.Navigate(session.ScreenTeacherDashboard)
			}
		})
	})
}

func (a *App) questionForm() {
	var req model.AddQuestionRequest
	a.startCapture(locale.T(a.sess.Locale, "game.question"), false, func(text string) {
		req.Text = text
		a.questionOption(&req, 0)
	})
}

func (a *App) questionOption(req *model.AddQuestionRequest, i int) {
	if i == len(req.Options) {
		a.startCapture("correct (1-4)", false, func(n string) {
			sel, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil || sel < 1 || sel > 4 {
				a.announce(response.CodeQuestionFields)
				return
			}
			req.CorrectOption = sel - 1
			if _, ok := a.teacher.AddQuestion(a.sess.SubjectID, *req); ok {
				a.render()
			}
		})
		return
	}
	word := locale.T(a.sess.Locale, "game.option")
	a.startCapture(fmt.Sprintf("%s %d", word, i+1), false, func(opt string) {
		req.Options[i] = opt
		a.questionOption(req, i+1)
	})
}

// ─── Command tables ──────────────────────────────────────────────────────

func (a *App) bind(l locale.Locale, act locale.Action, fn func()) {
	for _, p := range locale.Synonyms(l, act) {
		a.registry.Register(l, p, fn)
	}
}

func (a *App) bindParam(l locale.Locale, act locale.Action, fn func(string)) {
	for _, p := range locale.Synonyms(l, act) {
		a.registry.RegisterParam(l, p, fn)
	}
}

// bindCommands rebuilds the voice command tables for the current screen,
// in every locale so a language switch needs no re-registration.
func (a *App) bindCommands() {
	a.registry.Reset()
	for _, l := range locale.All {
		a.bindGlobal(l)
		a.bindScreen(l)
	}
}

func (a *App) bindGlobal(l locale.Locale) {
	a.bind(l, locale.ActionHelp, a.speakHelp)
	a.bind(l, locale.ActionRepeat, func() { a.Speak(a.spoken) })
	a.bind(l, locale.ActionDarkMode, func() {
		if a.sess.Theme != session.ThemeDark {
			a.switchTheme()
		}
	})
	a.bind(l, locale.ActionLightMode, func() {
		if a.sess.Theme != session.ThemeLight {
			a.switchTheme()
		}
	})
	// The tutorial narration promises these phrases.
	a.bind(l, locale.ActionStartMic, func() {
		if !a.micOn {
			a.toggleMic()
		}
	})
	a.bind(l, locale.ActionStopMic, func() {
		if a.micOn {
			a.endMic()
		}
	})
	if a.sess.Authenticated() {
		a.bind(l, locale.ActionLogout, a.auth.Logout)
	}
}

func (a *App) bindScreen(l locale.Locale) {
	switch a.sess.Screen {
	case session.ScreenLogin:
		a.bindParam(l, locale.ActionUsername, a.setUsername)
		a.bindParam(l, locale.ActionPassword, a.setPassword)
		a.bind(l, locale.ActionLogin, a.auth.Login)
		a.bind(l, locale.ActionRegister, func() { a.router.Navigate(session.ScreenRegister) })

	case session.ScreenRegister:
		a.bindParam(l, locale.ActionUsername, a.setUsername)
		a.bindParam(l, locale.ActionPassword, a.setPassword)
		a.bindParam(l, locale.ActionRole, func(arg string) {
			a.auth.SetRole(arg)
			a.render()
		})
		a.bind(l, locale.ActionRegister, a.auth.Register)
		a.bind(l, locale.ActionBack, func() { a.router.Navigate(session.ScreenLogin) })

	case session.ScreenTutorial:
		a.bind(l, locale.ActionNext, a.tutorial.Next)
		a.bind(l, locale.ActionBack, a.tutorial.Back)
		a.bind(l, locale.ActionRepeat, a.tutorial.Repeat)
		a.bind(l, locale.ActionFinish, a.tutorial.Finish)

	case session.ScreenStudentDashboard:
		a.bindParam(l, locale.ActionStartTest, func(name string) { a.student.StartTestByName(name) })

	case session.ScreenTeacherDashboard:
		a.bind(l, locale.ActionAddSubject, func() { a.router.Navigate(session.ScreenAddSubject) })
		a.bind(l, locale.ActionAddQuestion, a.gotoAddQuestion)
		a.bind(l, locale.ActionScores, a.gotoScores)

	case session.ScreenAddSubject, session.ScreenAddQuestion, session.ScreenScores:
		a.bind(l, locale.ActionBack, func() { a.router.Navigate(session.ScreenTeacherDashboard) })

	case session.ScreenQuiz:
		a.bind(l, locale.ActionPlayQuestion, a.quiz.PlayQuestion)
		a.bind(l, locale.ActionPlayOptions, a.quiz.PlayOptions)
		a.bindParam(l, locale.ActionSelectAnswer, a.answerByWord)

	case session.ScreenSuccess:
		a.bind(l, locale.ActionRestart, a.quiz.Restart)
		a.bind(l, locale.ActionAddMore, a.quiz.AddMore)
	}
}

func (a *App) setUsername(arg string) {
	a.auth.SetUsername(arg)
	a.render()
}

func (a *App) setPassword(arg string) {
	a.auth.SetPassword(arg)
	a.Notify("••••")
}

func (a *App) answerByWord(word string) {
	idx, ok := locale.OptionIndex(a.sess.Locale, word)
	if !ok {
		a.announce(response.CodeNotRecognized)
		return
	}
	a.quiz.Answer(idx)
}

func (a *App) gotoAddQuestion() {
	if a.sess.SubjectID == "" {
		a.announce(response.CodeSubjectRequired)
		return
	}
	a.router.Navigate(session.ScreenAddQuestion)
}

func (a *App) gotoScores() {
	if a.sess.SubjectID == "" {
		a.announce(response.CodeSubjectRequired)
		return
	}
	a.router.Navigate(session.ScreenScores)
}

// ─── Rendering ───────────────────────────────────────────────────────────

func (a *App) subjectName() string {
	if a.sess.SubjectID == "" {
		return ""
	}
	s, err := a.st.GetSubject(a.sess.SubjectID)
	if err != nil {
		return ""
	}
	return s.Name
}

func (a *App) render() {
	switch a.sess.Screen {
	case session.ScreenLogin:
		a.rend.Login(a.auth.Username)
	case session.ScreenRegister:
		a.rend.Register(a.auth.Username, a.auth.Role)
	case session.ScreenTutorial:
		a.rend.Tutorial(a.tutorial.Step(), handler.TutorialSteps, a.tutorial.Title())
	case session.ScreenTeacherDashboard:
		a.rend.TeacherDashboard(a.teacher.Subjects())
	case session.ScreenStudentDashboard:
		a.rend.StudentDashboard(a.student.AvailableTests())
	case session.ScreenAddSubject:
		a.rend.AddSubject()
	case session.ScreenAddQuestion:
		a.rend.AddQuestion(a.subjectName())
	case session.ScreenScores:
		a.rend.Scores(a.subjectName(), a.teacher.Reports(a.sess.SubjectID))
	case session.ScreenQuiz:
		if q, ok := a.quiz.Current(); ok {
			a.rend.Quiz(q, a.sess.Index, len(a.sess.Questions))
		}
	case session.ScreenSuccess:
		a.rend.Success()
	}
	a.rend.Mic(a.micOn)
	if a.status != "" {
		a.rend.Status(a.status)
	}
}

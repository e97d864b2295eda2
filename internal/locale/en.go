package locale

var en = map[Key]string{
	"welcome": "Welcome to Voice Learning Platform",

	"login.title":         "Welcome Back",
	"login.subtitle":      "Sign in to access your tests",
	"login.username":      "Username",
	"login.password":      "Password",
	"login.signIn":        "Sign In",
	"login.createAccount": "Create Account",
	"login.voiceHint":     "Try saying 'login' or 'register'",

	"register.title":    "Create Account",
	"register.subtitle": "Join the learning platform",
	"register.role":     "I am a:",
	"register.student":  "Student",
	"register.teacher":  "Teacher",
	"register.submit":   "Create Account",
	"register.back":     "Back to Login",

	"tutorial.title": "Voice Learning Platform Tutorial",
	"tutorial.step1.title": "Welcome!",
	"tutorial.step1.narration": "Welcome to the Voice Learning Platform! This platform is designed to be fully accessible through voice commands. " +
		"I'll guide you through how to use it. Say 'next' to continue.",
	"tutorial.step2.title": "Voice Controls",
	"tutorial.step2.narration": "To use voice commands, toggle the microphone or say 'start listening'. " +
		"You can say 'stop listening' at any time.",
	"tutorial.step3.title": "Basic Commands",
	"tutorial.step3.narration": "Here are the basic commands you can use: say 'login' to sign in, " +
		"'register' to create a new account, 'help' to hear available commands, and 'repeat' to hear something again.",
	"tutorial.step4.title": "Ready!",
	"tutorial.step4.narration": "Great! You're ready to start using the platform. " +
		"Remember, you can always say 'help' to hear the available commands for any screen. Say 'finish' to begin.",
	"tutorial.finished": "Tutorial completed! You can now use the platform. " +
		"Try saying 'login' to sign in or 'register' to create a new account.",

	"game.level":        "Level",
	"game.question":     "Question",
	"game.playQuestion": "Play Question",
	"game.playOptions":  "Play Options",
	"game.option":       "Option",
	"game.correct":      "Correct! Well done!",
	"game.incorrect":    "Incorrect. Try again.",
	"game.noQuestions":  "No questions available for this test",
	"game.testComplete": "Test completed!",
	"game.instructions": "Press Q to hear the current question. Press O to hear the answer options. " +
		"Use number keys 1 through 4, or say 'option one' through 'option four', to select your answer. " +
		"Press H anytime to hear these instructions again.",
	"game.successSummary": "Congratulations! You've completed all questions in this test. " +
		"Say 'restart' or press Space to play again, or say 'add more' to add more questions.",

	"theme.darkEnabled":  "Dark mode enabled",
	"theme.lightEnabled": "Light mode enabled",

	"student.availableTests": "Available Tests",
	"student.noTests":        "No tests are available at the moment.",
	"teacher.subjects":       "Your Subjects",
	"teacher.scores":         "Student Scores",
	"teacher.addSubject":     "Add Subject",
	"teacher.addQuestion":    "Add Question",

	"messages.cantSwitchDuringTest": "Cannot switch language during a test",
	"messages.loggedOut":            "You have been logged out",
}

var enCommands = map[Action][]string{
	ActionLogin:     {"login", "log in", "sign in"},
	ActionRegister:  {"register", "sign up", "create account"},
	ActionLogout:    {"logout", "sign out"},
	ActionNext:      {"next", "continue"},
	ActionBack:      {"back", "previous"},
	ActionRepeat:    {"repeat", "say again"},
	ActionFinish:    {"finish", "done"},
	ActionHelp:      {"help", "commands"},
	ActionDarkMode:  {"dark mode", "dark theme"},
	ActionLightMode: {"light mode", "light theme"},
	ActionStartMic:  {"start listening", "listen"},
	ActionStopMic:   {"stop listening", "stop"},

	ActionUsername:     {"username *", "my username is *"},
	ActionPassword:     {"password *", "my password is *"},
	ActionRole:         {"role *", "i am a *"},
	ActionStartTest:    {"start test *", "select test *"},
	ActionSelectAnswer: {"option *", "select answer *", "answer *"},

	ActionPlayQuestion: {"play question", "read question", "question"},
	ActionPlayOptions:  {"play options", "read options", "options"},
	ActionRestart:      {"restart", "play again"},
	ActionAddMore:      {"add more", "add more questions"},
	ActionAddSubject:   {"add subject", "new subject"},
	ActionAddQuestion:  {"add question", "new question"},
	ActionScores:       {"scores", "show scores"},
}

var enNumbers = map[string]int{
	"one":   0,
	"1":     0,
	"two":   1,
	"2":     1,
	"three": 2,
	"3":     2,
	"four":  3,
	"4":     3,
}

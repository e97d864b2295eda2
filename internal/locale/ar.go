package locale

var ar = map[Key]string{
	"welcome": "مرحباً بك في منصة التعلم الصوتي",

	"login.title":         "مرحباً بعودتك",
	"login.subtitle":      "سجل الدخول للوصول إلى الاختبارات",
	"login.username":      "اسم المستخدم",
	"login.password":      "كلمة المرور",
	"login.signIn":        "تسجيل الدخول",
	"login.createAccount": "إنشاء حساب",
	"login.voiceHint":     "جرب أن تقول 'تسجيل الدخول' أو 'تسجيل'",

	"register.title":    "إنشاء حساب",
	"register.subtitle": "انضم إلى منصة التعلم",
	"register.role":     "أنا:",
	"register.student":  "طالب",
	"register.teacher":  "معلم",
	"register.submit":   "إنشاء حساب",
	"register.back":     "العودة لتسجيل الدخول",

	"tutorial.title":           "دليل منصة التعلم الصوتي",
	"tutorial.step1.title":     "مرحباً!",
	"tutorial.step1.narration": "مرحباً بك في منصة التعلم الصوتي! هذه المنصة مصممة لتكون متاحة بالكامل من خلال الأوامر الصوتية. قل 'التالي' للمتابعة.",
	"tutorial.step2.title":     "التحكم الصوتي",
	"tutorial.step2.narration": "لاستخدام الأوامر الصوتية، فعّل الميكروفون أو قل 'ابدأ الاستماع'.",
	"tutorial.step3.title":     "الأوامر الأساسية",
	"tutorial.step3.narration": "إليك الأوامر الأساسية التي يمكنك استخدامها: قل 'تسجيل الدخول' للدخول، و'تسجيل' لإنشاء حساب جديد، و'مساعدة' لسماع الأوامر المتاحة.",
	"tutorial.step4.title":     "جاهز!",
	"tutorial.step4.narration": "رائع! أنت جاهز لبدء استخدام المنصة. تذكر أنه يمكنك دائماً قول 'مساعدة' لسماع الأوامر المتاحة. قل 'إنهاء' للبدء.",
	"tutorial.finished":        "اكتمل الدليل! يمكنك الآن استخدام المنصة.",

	"game.level":          "المستوى",
	"game.question":       "السؤال",
	"game.playQuestion":   "اسمع السؤال",
	"game.playOptions":    "اسمع الخيارات",
	"game.option":         "الخيار",
	"game.correct":        "صحيح! أحسنت!",
	"game.incorrect":      "غير صحيح. حاول مرة أخرى",
	"game.noQuestions":    "لا توجد أسئلة متاحة لهذا الاختبار",
	"game.testComplete":   "اكتمل الاختبار!",
	"game.instructions":   "اضغط Q لسماع السؤال الحالي. اضغط O لسماع الخيارات. استخدم الأرقام من 1 إلى 4 لاختيار إجابتك.",
	"game.successSummary": "تهانينا! لقد أكملت جميع أسئلة هذا الاختبار. قل 'إعادة' للعب مرة أخرى، أو قل 'أضف المزيد' لإضافة أسئلة جديدة.",

	"theme.darkEnabled":  "تم تفعيل الوضع الداكن",
	"theme.lightEnabled": "تم تفعيل الوضع الفاتح",

	"student.availableTests": "الاختبارات المتاحة",
	"student.noTests":        "لا توجد اختبارات متاحة حالياً.",
	"teacher.subjects":       "موادك الدراسية",
	"teacher.scores":         "نتائج الطلاب",
	"teacher.addSubject":     "إضافة مادة",
	"teacher.addQuestion":    "إضافة سؤال",

	"messages.cantSwitchDuringTest": "لا يمكن تغيير اللغة أثناء الاختبار",
	"messages.loggedOut":            "تم تسجيل خروجك",
}

var arCommands = map[Action][]string{
	ActionLogin:     {"تسجيل الدخول", "دخول"},
	ActionRegister:  {"تسجيل", "إنشاء حساب"},
	ActionLogout:    {"تسجيل خروج", "خروج"},
	ActionNext:      {"التالي", "استمر"},
	ActionBack:      {"رجوع", "السابق"},
	ActionRepeat:    {"تكرار", "أعد"},
	ActionFinish:    {"إنهاء", "انتهى"},
	ActionHelp:      {"مساعدة", "الأوامر"},
	ActionDarkMode:  {"الوضع الداكن", "الوضع الليلي"},
	ActionLightMode: {"الوضع الفاتح", "الوضع النهاري"},
	ActionStartMic:  {"ابدأ الاستماع", "استمع"},
	ActionStopMic:   {"أوقف الاستماع", "توقف"},

	ActionUsername:     {"اسم المستخدم *"},
	ActionPassword:     {"كلمة المرور *"},
	ActionRole:         {"أنا *"},
	ActionStartTest:    {"ابدأ اختبار *", "اختر اختبار *"},
	ActionSelectAnswer: {"الخيار *", "اختر الإجابة *", "الإجابة *"},

	ActionPlayQuestion: {"اقرأ السؤال", "السؤال"},
	ActionPlayOptions:  {"اقرأ الخيارات", "الخيارات"},
	ActionRestart:      {"إعادة", "العب مجددا"},
	ActionAddMore:      {"أضف المزيد", "أضف أسئلة"},
	ActionAddSubject:   {"إضافة مادة", "مادة جديدة"},
	ActionAddQuestion:  {"إضافة سؤال", "سؤال جديد"},
	ActionScores:       {"النتائج", "اعرض النتائج"},
}

var arNumbers = map[string]int{
	"واحد":  0,
	"١":     0,
	"1":     0,
	"اثنان": 1,
	"اثنين": 1,
	"٢":     1,
	"2":     1,
	"ثلاثة": 2,
	"٣":     2,
	"3":     2,
	"أربعة": 3,
	"اربعة": 3,
	"٤":     3,
	"4":     3,
}

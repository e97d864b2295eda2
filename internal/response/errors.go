package response

import "github.com/alimostafaali30/audiolearn/internal/locale"

// Code is a typed status code enum for consistent identification of the
// messages spoken and shown to the user.
type Code string

const (
	// ─── Authentication ────────────────────────────────────────────────
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeMissingCredentials Code = "MISSING_CREDENTIALS"
	CodeLoginRequired      Code = "LOGIN_REQUIRED"

	// ─── Registration ──────────────────────────────────────────────────
	CodeUsernameTaken      Code = "USERNAME_TAKEN"
	CodeRegistrationOK     Code = "REGISTRATION_OK"
	CodeRegistrationFields Code = "REGISTRATION_FIELDS"

	// ─── Authoring ─────────────────────────────────────────────────────
	CodeSubjectDetails  Code = "SUBJECT_DETAILS"
	CodeSubjectRequired Code = "SUBJECT_REQUIRED"
	CodeQuestionAdded   Code = "QUESTION_ADDED"
	CodeQuestionFields  Code = "QUESTION_FIELDS"

	// ─── Quiz ──────────────────────────────────────────────────────────
	CodeNoQuestions  Code = "NO_QUESTIONS"
	CodeSubjectMiss  Code = "SUBJECT_NOT_FOUND"
	CodeTestComplete Code = "TEST_COMPLETE"

	// ─── Voice ─────────────────────────────────────────────────────────
	CodeNotRecognized      Code = "COMMAND_NOT_RECOGNIZED"
	CodeSpeechUnavailable  Code = "SPEECH_UNAVAILABLE"
	CodeLocaleSwitchDenied Code = "LOCALE_SWITCH_DENIED"

	// ─── Storage ───────────────────────────────────────────────────────
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// Message returns the spoken, user-facing text for a status code in the
// given locale.
func Message(l locale.Locale, code Code) string {
	if l == locale.AR {
		return messageAR(code)
	}
	return messageEN(code)
}

func messageEN(code Code) string {
	switch code {
	case CodeInvalidCredentials:
		return "Invalid username or password"
	case CodeMissingCredentials:
		return "Please enter both username and password"
	case CodeLoginRequired:
		return "Please sign in first"
	case CodeUsernameTaken:
		return "Username already exists. Please choose another."
	case CodeRegistrationOK:
		return "Registration successful! Please log in."
	case CodeRegistrationFields:
		return "Please fill in all fields correctly"
	case CodeSubjectDetails:
		return "Please enter valid subject details"
	case CodeSubjectRequired:
		return "Please create a subject first before adding questions"
	case CodeQuestionAdded:
		return "Question added successfully"
	case CodeQuestionFields:
		return "Please fill in all fields correctly"
	case CodeNoQuestions:
		return "No questions available for this test"
	case CodeSubjectMiss:
		return "Subject not found"
	case CodeTestComplete:
		return "Test completed!"
	case CodeNotRecognized:
		return "Command not recognized"
	case CodeSpeechUnavailable:
		return "Voice control is unavailable. You can keep using the keys."
	case CodeLocaleSwitchDenied:
		return "Cannot switch language during a test"
	case CodeStorageFailure:
		return "Could not save your data"
	default:
		return "An unexpected error occurred"
	}
}

func messageAR(code Code) string {
	switch code {
	case CodeInvalidCredentials:
		return "اسم المستخدم أو كلمة المرور غير صحيحة"
	case CodeMissingCredentials:
		return "الرجاء إدخال اسم المستخدم وكلمة المرور"
	case CodeLoginRequired:
		return "الرجاء تسجيل الدخول أولاً"
	case CodeUsernameTaken:
		return "اسم المستخدم موجود بالفعل. الرجاء اختيار اسم آخر."
	case CodeRegistrationOK:
		return "تم التسجيل بنجاح! الرجاء تسجيل الدخول."
	case CodeRegistrationFields:
		return "الرجاء تعبئة جميع الحقول بشكل صحيح"
	case CodeSubjectDetails:
		return "الرجاء إدخال بيانات صحيحة للمادة"
	case CodeSubjectRequired:
		return "الرجاء إنشاء مادة أولاً قبل إضافة الأسئلة"
	case CodeQuestionAdded:
		return "تمت إضافة السؤال بنجاح"
	case CodeQuestionFields:
		return "الرجاء تعبئة جميع الحقول بشكل صحيح"
	case CodeNoQuestions:
		return "لا توجد أسئلة متاحة لهذا الاختبار"
	case CodeSubjectMiss:
		return "المادة غير موجودة"
	case CodeTestComplete:
		return "اكتمل الاختبار!"
	case CodeNotRecognized:
		return "الأمر غير معروف"
	case CodeSpeechUnavailable:
		return "التحكم الصوتي غير متاح. يمكنك متابعة استخدام لوحة المفاتيح."
	case CodeLocaleSwitchDenied:
		return "لا يمكن تغيير اللغة أثناء الاختبار"
	case CodeStorageFailure:
		return "تعذر حفظ بياناتك"
	default:
		return "حدث خطأ غير متوقع"
	}
}

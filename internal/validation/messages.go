package validation

import "strings"

// Messages is the text returned by the validators.
type Messages struct {
	NameRequired  string
	PhoneRequired string
	PhoneFormat   string
	EmailRequired string
	EmailFormat   string
	TermsRequired string
}

// English is the default catalog.
var English = Messages{
	NameRequired:  "name required.",
	PhoneRequired: "phone required.",
	PhoneFormat:   "invalid phone format. (e.g. 010-1234-5678)",
	EmailRequired: "email required.",
	EmailFormat:   "invalid email format. (e.g. example@example.com)",
	TermsRequired: "must agree to terms.",
}

// Korean is the wording the event page first shipped with.
var Korean = Messages{
	NameRequired:  "이름을 입력해 주세요.",
	PhoneRequired: "전화번호를 입력해 주세요.",
	PhoneFormat:   "올바른 전화번호 형식을 입력해 주세요. (예: 010-1234-5678)",
	EmailRequired: "이메일을 입력해 주세요.",
	EmailFormat:   "올바른 이메일 형식을 입력해 주세요. (예: example@example.com)",
	TermsRequired: "이용약관에 동의해 주세요.",
}

// MessagesFor returns the catalog for locale ("en", "ko"). Unknown locales
// get English.
func MessagesFor(locale string) Messages {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "ko", "ko-kr", "ko_kr":
		return Korean
	default:
		return English
	}
}

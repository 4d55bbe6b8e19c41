package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/promo-event/internal/model"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", English.NameRequired},
		{"spaces only", "   ", English.NameRequired},
		{"tabs and newlines", "\t\n ", English.NameRequired},
		{"byte order mark only", "\ufeff", English.NameRequired},
		{"ideographic space only", "\u3000", English.NameRequired},
		{"next line only", "\u0085", ""},
		{"plain", "Kim", ""},
		{"padded", "  Kim  ", ""},
		{"korean", "김철수", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateName(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", English.PhoneRequired},
		{"blank", "  ", English.PhoneRequired},
		{"byte order mark only", "\ufeff", English.PhoneRequired},
		{"next line only", "\u0085", English.PhoneFormat},
		{"valid", "010-1234-5678", ""},
		{"other prefix", "011-1234-5678", English.PhoneFormat},
		{"no hyphens", "01012345678", English.PhoneFormat},
		{"short middle group", "010-123-5678", English.PhoneFormat},
		{"long last group", "010-1234-56789", English.PhoneFormat},
		{"leading space", " 010-1234-5678", English.PhoneFormat},
		{"trailing newline", "010-1234-5678\n", English.PhoneFormat},
		{"letters", "010-abcd-5678", English.PhoneFormat},
		{"full-width digits", "010-１２３４-5678", English.PhoneFormat},
		{"international", "+82-10-1234-5678", English.PhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePhone(tt.input))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", English.EmailRequired},
		{"blank", " \t", English.EmailRequired},
		{"byte order mark only", "\ufeff", English.EmailRequired},
		{"next line only", "\u0085", English.EmailFormat},
		{"valid", "example@example.com", ""},
		{"short", "a@b.com", ""},
		{"subdomain", "user.name+tag@mail.example.co.kr", ""},
		{"no at", "example.example.com", English.EmailFormat},
		{"no dot in domain", "example@example", English.EmailFormat},
		{"two ats", "a@b@c.com", English.EmailFormat},
		{"space inside", "exa mple@example.com", English.EmailFormat},
		{"leading space", " example@example.com", English.EmailFormat},
		{"no-break space", "example\u00a0@example.com", English.EmailFormat},
		{"vertical tab", "example\v@example.com", English.EmailFormat},
		{"empty local part", "@example.com", English.EmailFormat},
		{"dot right after at", "a@.com", English.EmailFormat},
		{"trailing dot", "a@b.", English.EmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.input))
		})
	}
}

func TestValidateAgreedTerms(t *testing.T) {
	assert.Equal(t, English.TermsRequired, ValidateAgreedTerms(false))
	assert.Equal(t, "", ValidateAgreedTerms(true))
}

func TestValidatorsAreIdempotent(t *testing.T) {
	inputs := []string{"", " ", "Kim", "010-1234-5678", "bad", "a@b.com"}

	for _, in := range inputs {
		assert.Equal(t, ValidateName(in), ValidateName(in))
		assert.Equal(t, ValidatePhone(in), ValidatePhone(in))
		assert.Equal(t, ValidateEmail(in), ValidateEmail(in))
	}
	assert.Equal(t, ValidateAgreedTerms(false), ValidateAgreedTerms(false))
}

func TestValidatorsConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "", ValidatePhone("010-1234-5678"))
				assert.Equal(t, English.EmailFormat, ValidateEmail("nope"))
			}
		}()
	}
	wg.Wait()
}

func TestValidateUserInfo(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		result := ValidateUserInfo(model.UserInfo{
			Name:        "Kim",
			Phone:       "010-1234-5678",
			Email:       "a@b.com",
			AgreedTerms: true,
		})
		assert.True(t, result.Valid())
		assert.Empty(t, result.FieldErrors())
	})

	t.Run("every field invalid", func(t *testing.T) {
		result := ValidateUserInfo(model.UserInfo{Phone: "123", Email: "x"})
		require.False(t, result.Valid())
		assert.Equal(t, ValidationErrors{
			Name:        English.NameRequired,
			Phone:       English.PhoneFormat,
			Email:       English.EmailFormat,
			AgreedTerms: English.TermsRequired,
		}, result)

		fields := result.FieldErrors()
		require.Len(t, fields, 4)
		assert.Equal(t, "name", fields[0].Field)
		assert.Equal(t, "phone", fields[1].Field)
		assert.Equal(t, "email", fields[2].Field)
		assert.Equal(t, "agreedTerms", fields[3].Field)
	})

	t.Run("one slot set is enough to block", func(t *testing.T) {
		result := ValidateUserInfo(model.UserInfo{
			Name:  "Kim",
			Phone: "010-1234-5678",
			Email: "a@b.com",
		})
		assert.False(t, result.Valid())
		assert.Equal(t, English.TermsRequired, result.AgreedTerms)
	})
}

func TestKoreanMessages(t *testing.T) {
	v := New(MessagesFor("ko"))

	assert.Equal(t, "이름을 입력해 주세요.", v.Name(""))
	assert.Equal(t, "전화번호를 입력해 주세요.", v.Phone(""))
	assert.Equal(t, "올바른 전화번호 형식을 입력해 주세요. (예: 010-1234-5678)", v.Phone("010"))
	assert.Equal(t, "이메일을 입력해 주세요.", v.Email(""))
	assert.Equal(t, "올바른 이메일 형식을 입력해 주세요. (예: example@example.com)", v.Email("x"))
	assert.Equal(t, "이용약관에 동의해 주세요.", v.AgreedTerms(false))
	assert.Equal(t, "", v.Phone("010-1234-5678"))
}

func TestMessagesForUnknownLocale(t *testing.T) {
	assert.Equal(t, English, MessagesFor("fr"))
	assert.Equal(t, Korean, MessagesFor(" KO "))
}

package profile

import (
	"regexp"
	"strings"
)

// Правила повторяют валидацию мобильного клиента: телефон строго +7
// и десять цифр, ИНН десять цифр, имена только кириллицей.
var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)
	phoneRe = regexp.MustCompile(`^\+7\d{10}$`)
	nameRe  = regexp.MustCompile(`^[А-Яа-яЁё\s-]+$`)
	innRe   = regexp.MustCompile(`^\d{10}$`)
)

const (
	maxPhoneLength   = 12
	maxLicenseLength = 10
)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != "" && nameRe.MatchString(name)
}

func isValidINN(inn string) bool {
	return innRe.MatchString(inn)
}

func isValidLicense(license string) bool {
	trimmed := strings.TrimSpace(license)
	return trimmed != "" && len(trimmed) <= maxLicenseLength
}

func isNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// formatPhone нормализует номер: ведущая 8 заменяется на +7, к голым
// десяти цифрам дописывается +7, длина ограничивается 12 символами.
func formatPhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	if strings.HasPrefix(cleaned, "8") {
		cleaned = cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "+7") {
		cleaned = "+7" + cleaned
	}
	if len(cleaned) > maxPhoneLength {
		cleaned = cleaned[:maxPhoneLength]
	}
	return cleaned
}

package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(digitsOnly(phone))
}

// ValidateCPF aplica a checagem padrão de dígitos verificadores (módulo 11).
// Aceita o número com ou sem pontuação.
func ValidateCPF(cpf string) bool {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cpf)

	if len(digits) != 11 {
		return false
	}

	// Sequências repetidas (000..., 111...) passam no módulo 11 mas são inválidas.
	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	for _, position := range []int{9, 10} {
		sum := 0
		for i := 0; i < position; i++ {
			sum += int(digits[i]-'0') * (position + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != int(digits[position]-'0') {
			return false
		}
	}

	return true
}

// FormatCPF normaliza para o formato 000.000.000-00. Entrada inválida é
// devolvida como veio.
func FormatCPF(cpf string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, cpf)

	if len(digits) != 11 {
		return cpf
	}

	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatPhone normaliza telefones brasileiros para o formato +55DDDNÚMERO.
func FormatPhone(phone string) string {
	clean := digitsOnly(phone)

	if strings.HasPrefix(clean, "+") {
		return clean
	}
	if strings.HasPrefix(clean, "55") && len(clean) >= 12 {
		return "+" + clean
	}
	return "+55" + clean
}

func ValidateName(name string) bool {
	if len(strings.TrimSpace(name)) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

func FormatName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " ")
}

func capitalize(word string) string {
	if strings.Contains(word, "-") {
		subparts := strings.Split(word, "-")
		for i, sub := range subparts {
			subparts[i] = capitalize(sub)
		}
		return strings.Join(subparts, "-")
	}

	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, s)
}

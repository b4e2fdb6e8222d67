package validator

import (
	"testing"
)

func TestValidateCPF(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	for _, cpf := range valid {
		if !ValidateCPF(cpf) {
			t.Errorf("CPF %s deveria ser válido", cpf)
		}
	}

	invalid := []string{
		"",
		"529.982.247-26",  // dígito verificador errado
		"111.111.111-11",  // sequência repetida
		"000.000.000-00",
		"1234567890",      // curto demais
		"123456789012",
	}
	for _, cpf := range invalid {
		if ValidateCPF(cpf) {
			t.Errorf("CPF %s não deveria ser válido", cpf)
		}
	}
}

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("52998224725"); got != "529.982.247-25" {
		t.Errorf("FormatCPF = %s", got)
	}
	// Entrada inválida volta como veio.
	if got := FormatCPF("123"); got != "123" {
		t.Errorf("FormatCPF de entrada inválida = %s", got)
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(11) 98765-4321", "+5511987654321"},
		{"+5511987654321", "+5511987654321"},
		{"5511987654321", "+5511987654321"},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%s) = %s, esperado %s", tt.in, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("maria@clinica.com.br") {
		t.Errorf("e-mail válido rejeitado")
	}
	for _, email := range []string{"", "maria", "maria@", "@clinica.com"} {
		if ValidateEmail(email) {
			t.Errorf("e-mail %q não deveria ser válido", email)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"maria da silva", "Maria Da Silva"},
		{"JOÃO PEDRO", "João Pedro"},
		{"ana-luíza costa", "Ana-Luíza Costa"},
	}
	for _, tt := range tests {
		if got := FormatName(tt.in); got != tt.want {
			t.Errorf("FormatName(%s) = %s, esperado %s", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`<script>"x"</script>`); got != "scriptx/script" {
		t.Errorf("SanitizeString = %s", got)
	}
}

package rutura_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

func TestClasificarHora(t *testing.T) {
	tests := []struct {
		texto string
		want  rutura.Hora
	}{
		{"Rutura 14h", rutura.Hora14},
		{"RUTURA 14H", rutura.Hora14},
		{"Rutura 18h", rutura.Hora18},
		{"rutura 18H-Sem Stock", rutura.Hora18},
		{"Rutura 14h-Sem Stock Físico e BC", rutura.Hora14},
		{"", rutura.HoraDesconocida},
		{"Rutura", rutura.HoraDesconocida},
		{"corte de la tarde", rutura.HoraDesconocida},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, rutura.ClasificarHora(tc.texto), "texto: %q", tc.texto)
	}
}

func TestNormalizarSecao(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Cozinha Fria", "COZINHA FRIA"},
		{"COZINHA FRIA", "COZINHA FRIA"},
		{"  cozinha   fria  ", "COZINHA FRIA"},
		{"Coz Fria", "COZINHA FRIA"}, // alias conocido
		{"Pastelaria", "PASTELARIA"},
		{"Seção Teste", "SECAO TESTE"}, // sin acentos
		{"TALHO", "TALHO"},             // desconocida: pasa normalizada
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, rutura.NormalizarSecao(tc.raw), "raw: %q", tc.raw)
	}
}

func TestNormalizarSecao_Deterministica(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "COZINHA FRIA", rutura.NormalizarSecao("cozinha FRIA"))
	}
}

func TestSemanaDelMes(t *testing.T) {
	tests := []struct {
		fecha   time.Time
		label   string
		ordinal int
	}{
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "1ª Semana de Abril", 1},
		{time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC), "1ª Semana de Abril", 1},
		{time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC), "2ª Semana de Abril", 2},
		{time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), "5ª Semana de Abril", 5},
		{time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), "3ª Semana de Janeiro", 3},
		{time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "5ª Semana de Março", 5},
	}
	for _, tc := range tests {
		s := rutura.SemanaDelMes(tc.fecha)
		assert.Equal(t, tc.label, s.Label, "fecha: %s", tc.fecha)
		assert.Equal(t, tc.ordinal, s.Ordinal)
		assert.True(t, s.Valida())
	}
}

func TestSemanaDelMes_FechaDesconocida(t *testing.T) {
	s := rutura.SemanaDelMes(time.Time{})
	assert.Equal(t, rutura.SemanaInvalidaLabel, s.Label)
	assert.False(t, s.Valida())
}

func TestSemana_OrdenCronologico(t *testing.T) {
	enero := rutura.SemanaDelMes(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC))
	abril1 := rutura.SemanaDelMes(time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC))
	abril2 := rutura.SemanaDelMes(time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC))
	anterior := rutura.SemanaDelMes(time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC))
	invalida := rutura.SemanaDelMes(time.Time{})

	assert.True(t, enero.Antes(abril1))
	assert.True(t, abril1.Antes(abril2))
	assert.True(t, anterior.Antes(enero))
	assert.True(t, invalida.Antes(anterior), "la semana inválida ordena primero")
	assert.False(t, abril2.Antes(abril1))
}

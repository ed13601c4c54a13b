package svtext_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bennys-motorworks/verkstad-api/pkg/svtext"
)

// La etiqueta de orden de trabajo lleva siempre 5 dígitos con ceros.
func TestWorkOrder_RellenoDeCeros(t *testing.T) {
	assert.Equal(t, "Benny's Arbetsorder - 00001", svtext.WorkOrder(1))
	assert.Equal(t, "Benny's Arbetsorder - 00042", svtext.WorkOrder(42))
	assert.Equal(t, "Benny's Arbetsorder - 12345", svtext.WorkOrder(12345))
	// Por encima de 5 dígitos el número crece sin truncarse.
	assert.Equal(t, "Benny's Arbetsorder - 123456", svtext.WorkOrder(123456))
}

func TestWorkOrderNumber(t *testing.T) {
	assert.Equal(t, "00007", svtext.WorkOrderNumber(7))
}

// Formato sueco: coma decimal. Se evitan importes con miles porque el
// separador de agrupación sueco es un espacio duro (U+00A0).
func TestSEK_ComaDecimal(t *testing.T) {
	assert.Equal(t, "123,45 SEK", svtext.SEK(decimal.RequireFromString("123.45")))
	assert.Equal(t, "0,00 SEK", svtext.SEK(decimal.Zero))
	assert.Equal(t, "999,00 SEK", svtext.SEK(decimal.NewFromInt(999)))
}

// Package svtext formatea importes y etiquetas en el formato sueco que usa el
// taller: coma decimal, separador de miles y el número de orden de trabajo con
// ceros a la izquierda ("Benny's Arbetsorder - 00042").
package svtext

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const workOrderPrefix = "Benny's Arbetsorder"

var sv = message.NewPrinter(language.Swedish)

// SEK formatea un importe en coronas suecas: "1 234,56 SEK".
func SEK(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return sv.Sprintf("%.2f SEK", f)
}

// WorkOrder devuelve la etiqueta de orden de trabajo derivada del id del recibo.
// Ancho fijo de 5 dígitos con relleno de ceros.
func WorkOrder(receiptID int64) string {
	return fmt.Sprintf("%s - %05d", workOrderPrefix, receiptID)
}

// WorkOrderNumber devuelve solo el número con relleno ("00042"), para listados.
func WorkOrderNumber(receiptID int64) string {
	return fmt.Sprintf("%05d", receiptID)
}

package concar

import "fmt"

// pesos del módulo 11 de SUNAT, aplicados a los 10 primeros dígitos del RUC de izquierda a derecha.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// RUCLength dígitos de un RUC (10 de base + dígito verificador).
const RUCLength = 11

// ValidateRUC comprueba que taxID sea un RUC de 11 dígitos con dígito verificador correcto.
// El registro no lo exige (CONCAR acepta el archivo igual); se usa para advertir al verificar.
func ValidateRUC(taxID string) error {
	if len(taxID) != RUCLength {
		return fmt.Errorf("concar: RUC debe tener %d dígitos, se recibieron %d", RUCLength, len(taxID))
	}
	for i := 0; i < RUCLength; i++ {
		if taxID[i] < '0' || taxID[i] > '9' {
			return fmt.Errorf("concar: RUC %q contiene caracteres no numéricos", taxID)
		}
	}
	expected := ComputeRUCCheckDigit(taxID[:10])
	if taxID[10] != expected {
		return fmt.Errorf("concar: dígito verificador del RUC inválido: esperado %c, recibido %c", expected, taxID[10])
	}
	return nil
}

// ComputeRUCCheckDigit calcula el dígito verificador para base (10 dígitos ASCII).
func ComputeRUCCheckDigit(base string) byte {
	var sum int
	for i := 0; i < len(rucWeights) && i < len(base); i++ {
		sum += int(base[i]-'0') * rucWeights[i]
	}
	switch dv := 11 - sum%11; dv {
	case 10:
		return '0'
	case 11:
		return '1'
	default:
		return byte('0' + dv)
	}
}

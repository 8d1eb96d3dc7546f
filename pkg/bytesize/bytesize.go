// Package bytesize formata volumes de bytes em unidades binárias legíveis.
package bytesize

import "fmt"

var units = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Format retorna o valor com duas casas decimais e a unidade, ex.: "1.15 GB".
// Os divisores são potências de 1024; acima de PB o resultado é rotulado EB.
func Format(value float64) string {
	for _, unit := range units {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f EB", value)
}

// FormatInt é um atalho para contagens inteiras.
func FormatInt(n int64) string {
	return Format(float64(n))
}

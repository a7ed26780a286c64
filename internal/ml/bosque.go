package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Nodo es un nodo de un arbol de decision ya entrenado. Los nodos internos
// comparan features[Columna] <= Umbral; las hojas llevan Clase >= 0.
type Nodo struct {
	Columna int     `json:"columna"`
	Umbral  float64 `json:"umbral"`
	Izq     *Nodo   `json:"izq,omitempty"`
	Der     *Nodo   `json:"der,omitempty"`
	Clase   int     `json:"clase"`
}

// Bosque es la exportacion portable del clasificador entrenado: las etiquetas
// de salida y los arboles ajustados. La prediccion es voto por mayoria.
type Bosque struct {
	Clases  []string `json:"clases"`
	Arboles []*Nodo  `json:"arboles"`
}

// CargarBosque lee el artefacto JSON del modelo desde ruta.
func CargarBosque(ruta string) (*Bosque, error) {
	raw, err := os.ReadFile(ruta)
	if err != nil {
		return nil, fmt.Errorf("ml: no se pudo leer el modelo %q: %w", ruta, err)
	}
	var b Bosque
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("ml: modelo %q ilegible: %w", ruta, err)
	}
	if len(b.Clases) == 0 || len(b.Arboles) == 0 {
		return nil, fmt.Errorf("ml: modelo %q vacio", ruta)
	}
	return &b, nil
}

// Clasificar evalua el vector de features en cada arbol y devuelve la
// etiqueta con mas votos. Ante empate gana la clase de indice menor, igual
// que el orden estable de las clases en el entrenamiento.
func (b *Bosque) Clasificar(features []float64) (string, error) {
	votos := make([]int, len(b.Clases))
	for _, raiz := range b.Arboles {
		n := raiz
		for n != nil && n.Clase < 0 {
			if n.Izq == nil || n.Der == nil {
				return "", errors.New("ml: arbol mal formado")
			}
			if n.Columna < 0 || n.Columna >= len(features) {
				return "", fmt.Errorf("ml: columna %d fuera del esquema (%d features)", n.Columna, len(features))
			}
			if features[n.Columna] <= n.Umbral {
				n = n.Izq
			} else {
				n = n.Der
			}
		}
		if n == nil || n.Clase >= len(b.Clases) {
			return "", errors.New("ml: hoja con clase invalida")
		}
		votos[n.Clase]++
	}

	mejor := 0
	for i, v := range votos {
		if v > votos[mejor] {
			mejor = i
		}
	}
	return b.Clases[mejor], nil
}

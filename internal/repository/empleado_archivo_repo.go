package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Alejandra29-cyber/Problema-Prtototipico/internal/model"
)

// ArchivoEmpleadoRepository persiste el documento completo de la empresa en
// un archivo JSON, reescribiendolo entero despues de cada mutacion. El
// documento en memoria es la unica fuente de verdad.
//
// Un solo RWMutex serializa a los escritores entre si y contra los lectores;
// los lectores pueden correr en paralelo. El reemplazo del archivo pasa por
// un temporal + rename para que un corte a mitad de escritura no trunque el
// documento; la granularidad sigue siendo el documento completo.
type ArchivoEmpleadoRepository struct {
	mu   sync.RWMutex
	ruta string
	doc  model.DocumentoEmpleados
}

// NewArchivoEmpleadoRepository carga el documento desde ruta. Si el archivo
// no existe o esta corrupto se parte de un documento vacio con el nombre de
// empresa configurado; se creara en la primera escritura.
func NewArchivoEmpleadoRepository(ruta, empresa string) *ArchivoEmpleadoRepository {
	repo := &ArchivoEmpleadoRepository{
		ruta: ruta,
		doc:  model.DocumentoEmpleados{Empresa: empresa, Empleados: []model.Empleado{}},
	}

	raw, err := os.ReadFile(ruta)
	if err != nil {
		log.Info().Str("ruta", ruta).Msg("documento de empleados no encontrado; se creara al guardar")
		return repo
	}
	var doc model.DocumentoEmpleados
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Str("ruta", ruta).Msg("documento de empleados ilegible; se parte de un documento vacio")
		return repo
	}
	if doc.Empresa == "" {
		doc.Empresa = empresa
	}
	if doc.Empleados == nil {
		doc.Empleados = []model.Empleado{}
	}
	repo.doc = doc
	log.Info().Int("empleados", len(doc.Empleados)).Str("empresa", doc.Empresa).Msg("documento de empleados cargado")
	return repo
}

// guardar serializa el documento completo y reemplaza el archivo. Requiere
// el lock de escritura tomado.
func (r *ArchivoEmpleadoRepository) guardar() error {
	data, err := json.MarshalIndent(r.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("repository: serializando documento: %w", err)
	}
	tmp := r.ruta + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("repository: escribiendo %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.ruta); err != nil {
		return fmt.Errorf("repository: reemplazando %q: %w", r.ruta, err)
	}
	return nil
}

func (r *ArchivoEmpleadoRepository) Listar() ([]model.Empleado, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.doc.Empleados), nil
}

func (r *ArchivoEmpleadoRepository) PorID(id int) (*model.Empleado, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.doc.Empleados {
		if r.doc.Empleados[i].ID == id {
			e := r.doc.Empleados[i]
			return &e, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (r *ArchivoEmpleadoRepository) Crear(campos CamposEmpleado, calidad string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// id = max + 1; nunca se reasigna el hueco de un borrado intermedio.
	id := 0
	for i := range r.doc.Empleados {
		if r.doc.Empleados[i].ID > id {
			id = r.doc.Empleados[i].ID
		}
	}
	id++

	nuevo := model.Empleado{ID: id, CalidadCandidato: calidad}
	aplicarCampos(&nuevo, campos)

	previos := slices.Clone(r.doc.Empleados)
	r.doc.Empleados = append(r.doc.Empleados, nuevo)
	if err := r.guardar(); err != nil {
		r.doc.Empleados = previos
		return 0, err
	}
	return id, nil
}

func (r *ArchivoEmpleadoRepository) Actualizar(id int, campos CamposEmpleado) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.doc.Empleados {
		if r.doc.Empleados[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoEncontrado
	}

	previo := r.doc.Empleados[idx]
	aplicarCampos(&r.doc.Empleados[idx], campos)
	if err := r.guardar(); err != nil {
		r.doc.Empleados[idx] = previo
		return err
	}
	return nil
}

func (r *ArchivoEmpleadoRepository) Eliminar(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.doc.Empleados {
		if r.doc.Empleados[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNoEncontrado
	}

	previos := slices.Clone(r.doc.Empleados)
	r.doc.Empleados = slices.Delete(r.doc.Empleados, idx, idx+1)
	if err := r.guardar(); err != nil {
		r.doc.Empleados = previos
		return err
	}
	return nil
}

package workshopapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"taller_dashboards/internal/domain/correlate"
	"taller_dashboards/internal/domain/entities"
)

// The backend names fields inconsistently across collections (English or
// Spanish, camel or snake case, ids as numbers or strings, references as
// scalars or nested objects). Each wire struct lists every alias seen in the
// wild and a Resolve* method picks the first populated one.

// flexID accepts a string or numeric id.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime accepts the timestamp formats the backend emits. Unparseable or
// null values decode to the zero time instead of failing the record.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = flexTime(time.Time{})
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime(t.UTC())
			return nil
		}
	}
	return nil
}

func (f flexTime) Time() time.Time { return time.Time(f) }

// flexMoney accepts a number or a numeric string. Anything else decodes to
// zero.
type flexMoney decimal.Decimal

func (f *flexMoney) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = flexMoney(decimal.Zero)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	if raw == "" {
		return nil
	}
	if d, err := decimal.NewFromString(raw); err == nil {
		*f = flexMoney(d)
	}
	return nil
}

func (f flexMoney) Decimal() decimal.Decimal { return decimal.Decimal(f) }

// flexInt accepts a number or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*f = 0
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil {
		*f = flexInt(i)
	} else if fl, err := n.Float64(); err == nil {
		*f = flexInt(int(fl))
	}
	return nil
}

// refKeyAliases are the identifying fields collected from a nested reference
// object, in candidate order.
var refKeyAliases = []string{
	"id", "_id", "numero", "number",
	"dni", "cedula",
	"placa", "plate", "vin",
	"username", "usuario", "nombre", "name",
}

// refField accepts a scalar id, a nested object, or null, and collects every
// identifying candidate it carries.
type refField struct {
	candidates []string
}

func (r *refField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	r.candidates = nil
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil
		}
		for _, key := range refKeyAliases {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var id flexID
			if err := id.UnmarshalJSON(raw); err == nil && id != "" {
				r.candidates = append(r.candidates, string(id))
			}
		}
		return nil
	}
	var id flexID
	if err := id.UnmarshalJSON(b); err == nil && id != "" {
		r.candidates = []string{string(id)}
	}
	return nil
}

func (r refField) Ref() correlate.Ref { return correlate.NewRef(r.candidates...) }

func firstID(ids ...flexID) string {
	for _, id := range ids {
		if id != "" {
			return string(id)
		}
	}
	return ""
}

func firstString(ss ...string) string {
	for _, s := range ss {
		if v := strings.TrimSpace(s); v != "" {
			return v
		}
	}
	return ""
}

func firstTime(ts ...flexTime) time.Time {
	for _, t := range ts {
		if !t.Time().IsZero() {
			return t.Time()
		}
	}
	return time.Time{}
}

func firstMoney(ms ...flexMoney) decimal.Decimal {
	for _, m := range ms {
		if !m.Decimal().IsZero() {
			return m.Decimal()
		}
	}
	return decimal.Zero
}

func firstInt(ns ...flexInt) int {
	for _, n := range ns {
		if n != 0 {
			return int(n)
		}
	}
	return 0
}

func mergeRefs(rs ...refField) correlate.Ref {
	out := correlate.NewRef()
	for _, r := range rs {
		out = out.Merge(r.Ref())
	}
	return out
}

// resolveActive defaults to true: a record without an active flag is live.
func resolveActive(vs ...*bool) bool {
	for _, v := range vs {
		if v != nil {
			return *v
		}
	}
	return true
}

type workOrderWire struct {
	ID      flexID `json:"id"`
	IDAlt   flexID `json:"_id"`
	IDOrden flexID `json:"idOrden"`

	Numero    string `json:"numero"`
	Number    string `json:"number"`
	NroOrden  string `json:"numeroOrden"`
	OrderCode string `json:"codigo"`

	Estado string `json:"estado"`
	State  string `json:"state"`
	Status string `json:"status"`

	Prioridad string `json:"prioridad"`
	Priority  string `json:"priority"`

	FechaCreacion  flexTime `json:"fechaCreacion"`
	FechaCreacionS flexTime `json:"fecha_creacion"`
	CreatedAt      flexTime `json:"createdAt"`
	CreatedAtS     flexTime `json:"created_at"`

	FechaEntregaEstimada flexTime `json:"fechaEntregaEstimada"`
	EstimatedDelivery    flexTime `json:"estimatedDelivery"`
	EstimatedDeliveryS   flexTime `json:"estimated_delivery"`
	FechaEntrega         flexTime `json:"fechaEntrega"`

	FechaCompletado flexTime `json:"fechaCompletado"`
	CompletedAt     flexTime `json:"completedAt"`
	CompletedAtS    flexTime `json:"completed_at"`

	Cliente   refField `json:"cliente"`
	IDCliente refField `json:"idCliente"`
	ClienteID refField `json:"clienteId"`
	ClienteS  refField `json:"cliente_id"`
	ClientID  refField `json:"clientId"`

	Moto         refField `json:"moto"`
	Motocicleta  refField `json:"motocicleta"`
	IDMoto       refField `json:"idMoto"`
	MotoID       refField `json:"motoId"`
	MotoS        refField `json:"moto_id"`
	MotorcycleID refField `json:"motorcycleId"`

	Mecanico   refField `json:"mecanico"`
	IDMecanico refField `json:"idMecanico"`
	MecanicoID refField `json:"mecanicoId"`
	MechanicID refField `json:"mechanicId"`
	AssignedTo refField `json:"assignedTo"`

	CreadoPor refField `json:"creadoPor"`
	CreatedBy refField `json:"createdBy"`
	Usuario   refField `json:"usuario"`

	Servicios []refField `json:"servicios"`
	Services  []refField `json:"services"`

	Problema  string `json:"problema"`
	Problem   string `json:"problem"`
	Descrip   string `json:"descripcionProblema"`
	Diag      string `json:"diagnostico"`
	Diagnosis string `json:"diagnosis"`
	Notas     string `json:"notas"`
	Notes     string `json:"notes"`
	Observ    string `json:"observaciones"`
}

func (w workOrderWire) toEntity() entities.WorkOrder {
	services := w.Servicios
	if len(services) == 0 {
		services = w.Services
	}
	refs := make([]correlate.Ref, 0, len(services))
	for _, s := range services {
		if ref := s.Ref(); !ref.Empty() {
			refs = append(refs, ref)
		}
	}

	return entities.WorkOrder{
		ID:                firstID(w.ID, w.IDAlt, w.IDOrden),
		Number:            firstString(w.Numero, w.Number, w.NroOrden, w.OrderCode),
		State:             entities.NormalizeOrderState(firstString(w.Estado, w.State, w.Status)),
		Priority:          entities.NormalizePriority(firstString(w.Prioridad, w.Priority)),
		CreatedAt:         firstTime(w.FechaCreacion, w.FechaCreacionS, w.CreatedAt, w.CreatedAtS),
		EstimatedDelivery: firstTime(w.FechaEntregaEstimada, w.EstimatedDelivery, w.EstimatedDeliveryS, w.FechaEntrega),
		CompletedAt:       firstTime(w.FechaCompletado, w.CompletedAt, w.CompletedAtS),
		ClientRef:         mergeRefs(w.Cliente, w.IDCliente, w.ClienteID, w.ClienteS, w.ClientID),
		MotorcycleRef:     mergeRefs(w.Moto, w.Motocicleta, w.IDMoto, w.MotoID, w.MotoS, w.MotorcycleID),
		MechanicRef:       mergeRefs(w.Mecanico, w.IDMecanico, w.MecanicoID, w.MechanicID, w.AssignedTo),
		CreatedByRef:      mergeRefs(w.CreadoPor, w.CreatedBy, w.Usuario),
		ServiceRefs:       refs,
		Problem:           firstString(w.Problema, w.Problem, w.Descrip),
		Diagnosis:         firstString(w.Diag, w.Diagnosis),
		Notes:             firstString(w.Notas, w.Notes, w.Observ),
	}
}

type clientWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	Nombre   string `json:"nombre"`
	Name     string `json:"name"`
	FullName string `json:"nombreCompleto"`

	Telefono string `json:"telefono"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Correo   string `json:"correo"`

	DNI    flexID `json:"dni"`
	Cedula flexID `json:"cedula"`

	Direccion string `json:"direccion"`
	Address   string `json:"address"`

	Activo *bool `json:"activo"`
	Active *bool `json:"active"`

	FechaCreacion  flexTime `json:"fechaCreacion"`
	FechaCreacionS flexTime `json:"fecha_creacion"`
	CreatedAt      flexTime `json:"createdAt"`
	CreatedAtS     flexTime `json:"created_at"`
	UpdatedAt      flexTime `json:"updatedAt"`
	UpdatedAtS     flexTime `json:"updated_at"`
}

func (w clientWire) toEntity() entities.Client {
	return entities.Client{
		ID:         firstID(w.ID, w.IDAlt),
		Name:       firstString(w.Nombre, w.Name, w.FullName),
		Phone:      firstString(w.Telefono, w.Phone),
		Email:      firstString(w.Email, w.Correo),
		NationalID: firstID(w.DNI, w.Cedula),
		Address:    firstString(w.Direccion, w.Address),
		Active:     resolveActive(w.Activo, w.Active),
		CreatedAt:  firstTime(w.FechaCreacion, w.FechaCreacionS, w.CreatedAt, w.CreatedAtS),
		UpdatedAt:  firstTime(w.UpdatedAt, w.UpdatedAtS),
	}
}

type motorcycleWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	Cliente   refField `json:"cliente"`
	IDCliente refField `json:"idCliente"`
	ClienteID refField `json:"clienteId"`
	ClienteS  refField `json:"cliente_id"`
	ClientID  refField `json:"clientId"`
	Dueno     refField `json:"dueno"`
	Owner     refField `json:"owner"`

	Marca  string  `json:"marca"`
	Brand  string  `json:"brand"`
	Modelo string  `json:"modelo"`
	Model  string  `json:"model"`
	Anio   flexInt `json:"anio"`
	Year   flexInt `json:"year"`

	Placa  string `json:"placa"`
	Plate  string `json:"plate"`
	VIN    string `json:"vin"`
	Chasis string `json:"chasis"`

	Color string `json:"color"`

	Kilometraje flexInt `json:"kilometraje"`
	Odometer    flexInt `json:"odometer"`
	Mileage     flexInt `json:"mileage"`

	Activo *bool `json:"activo"`
	Active *bool `json:"active"`

	EstadoTecnico  string `json:"estadoTecnico"`
	TechnicalState string `json:"technicalState"`

	FechaCreacion  flexTime `json:"fechaCreacion"`
	FechaCreacionS flexTime `json:"fecha_creacion"`
	CreatedAt      flexTime `json:"createdAt"`
	CreatedAtS     flexTime `json:"created_at"`
	UpdatedAt      flexTime `json:"updatedAt"`
	UpdatedAtS     flexTime `json:"updated_at"`
}

func (w motorcycleWire) toEntity() entities.Motorcycle {
	return entities.Motorcycle{
		ID:             firstID(w.ID, w.IDAlt),
		ClientRef:      mergeRefs(w.Cliente, w.IDCliente, w.ClienteID, w.ClienteS, w.ClientID, w.Dueno, w.Owner),
		Brand:          firstString(w.Marca, w.Brand),
		Model:          firstString(w.Modelo, w.Model),
		Year:           firstInt(w.Anio, w.Year),
		Plate:          firstString(w.Placa, w.Plate),
		VIN:            firstString(w.VIN, w.Chasis),
		Color:          w.Color,
		Odometer:       firstInt(w.Kilometraje, w.Odometer, w.Mileage),
		Active:         resolveActive(w.Activo, w.Active),
		TechnicalState: firstString(w.EstadoTecnico, w.TechnicalState),
		CreatedAt:      firstTime(w.FechaCreacion, w.FechaCreacionS, w.CreatedAt, w.CreatedAtS),
		UpdatedAt:      firstTime(w.UpdatedAt, w.UpdatedAtS),
	}
}

type paymentWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	Monto  flexMoney `json:"monto"`
	Amount flexMoney `json:"amount"`
	Total  flexMoney `json:"total"`
	Valor  flexMoney `json:"valor"`

	Metodo     string `json:"metodo"`
	MetodoPago string `json:"metodoPago"`
	Method     string `json:"method"`

	Orden     refField `json:"orden"`
	IDOrden   refField `json:"idOrden"`
	OrdenID   refField `json:"ordenId"`
	OrdenS    refField `json:"orden_id"`
	OrderID   refField `json:"orderId"`
	NroOrden  refField `json:"numeroOrden"`
	WorkOrder refField `json:"workOrder"`

	FechaPago  flexTime `json:"fechaPago"`
	FechaPagoS flexTime `json:"fecha_pago"`
	PaidAt     flexTime `json:"paidAt"`
	Fecha      flexTime `json:"fecha"`
	Date       flexTime `json:"date"`
	CreatedAt  flexTime `json:"createdAt"`
	CreatedAtS flexTime `json:"created_at"`

	Estado string `json:"estado"`
	Status string `json:"status"`
}

func (w paymentWire) toEntity() entities.Payment {
	return entities.Payment{
		ID:       firstID(w.ID, w.IDAlt),
		Amount:   firstMoney(w.Monto, w.Amount, w.Total, w.Valor),
		Method:   firstString(w.Metodo, w.MetodoPago, w.Method),
		OrderRef: mergeRefs(w.Orden, w.IDOrden, w.OrdenID, w.OrdenS, w.OrderID, w.NroOrden, w.WorkOrder),
		PaidAt:   firstTime(w.FechaPago, w.FechaPagoS, w.PaidAt, w.Fecha, w.Date, w.CreatedAt, w.CreatedAtS),
		Status:   entities.NormalizePaymentStatus(firstString(w.Estado, w.Status)),
	}
}

type serviceWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	Nombre string `json:"nombre"`
	Name   string `json:"name"`

	Categoria string `json:"categoria"`
	Category  string `json:"category"`

	Precio     flexMoney `json:"precio"`
	PrecioBase flexMoney `json:"precioBase"`
	Price      flexMoney `json:"price"`
	BasePrice  flexMoney `json:"basePrice"`
}

func (w serviceWire) toEntity() entities.CatalogService {
	return entities.CatalogService{
		ID:        firstID(w.ID, w.IDAlt),
		Name:      firstString(w.Nombre, w.Name),
		Category:  firstString(w.Categoria, w.Category),
		BasePrice: firstMoney(w.Precio, w.PrecioBase, w.Price, w.BasePrice),
	}
}

type partWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	Nombre string `json:"nombre"`
	Name   string `json:"name"`

	Stock       flexInt `json:"stock"`
	Cantidad    flexInt `json:"cantidad"`
	Quantity    flexInt `json:"quantity"`
	StockMinimo flexInt `json:"stockMinimo"`
	MinStock    flexInt `json:"minStock"`
	MinStockS   flexInt `json:"min_stock"`

	Activo *bool `json:"activo"`
	Active *bool `json:"active"`

	Precio         flexMoney `json:"precio"`
	PrecioUnitario flexMoney `json:"precioUnitario"`
	UnitPrice      flexMoney `json:"unitPrice"`
	Price          flexMoney `json:"price"`
}

func (w partWire) toEntity() entities.Part {
	return entities.Part{
		ID:        firstID(w.ID, w.IDAlt),
		Name:      firstString(w.Nombre, w.Name),
		Stock:     firstInt(w.Stock, w.Cantidad, w.Quantity),
		MinStock:  firstInt(w.StockMinimo, w.MinStock, w.MinStockS),
		Active:    resolveActive(w.Activo, w.Active),
		UnitPrice: firstMoney(w.Precio, w.PrecioUnitario, w.UnitPrice, w.Price),
	}
}

type userWire struct {
	ID    flexID `json:"id"`
	IDAlt flexID `json:"_id"`

	NombreCompleto string `json:"nombreCompleto"`
	Nombre         string `json:"nombre"`
	FullName       string `json:"fullName"`
	Name           string `json:"name"`

	Username string `json:"username"`
	Usuario  string `json:"usuario"`

	Email  string `json:"email"`
	Correo string `json:"correo"`

	Rol  string `json:"rol"`
	Role string `json:"role"`

	Activo *bool `json:"activo"`
	Active *bool `json:"active"`

	UltimoAcceso flexTime `json:"ultimoAcceso"`
	LastLogin    flexTime `json:"lastLogin"`
	LastLoginS   flexTime `json:"last_login"`
}

func (w userWire) toEntity() entities.User {
	return entities.User{
		ID:        firstID(w.ID, w.IDAlt),
		FullName:  firstString(w.NombreCompleto, w.Nombre, w.FullName, w.Name),
		Username:  firstString(w.Username, w.Usuario),
		Email:     firstString(w.Email, w.Correo),
		Role:      entities.NormalizeRole(firstString(w.Rol, w.Role)),
		Active:    resolveActive(w.Activo, w.Active),
		LastLogin: firstTime(w.UltimoAcceso, w.LastLogin, w.LastLoginS),
	}
}

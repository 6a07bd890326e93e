package backend

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dealerbooks/dealerbooks/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// accountDTO is a /cuentas row.
type accountDTO struct {
	ID     int    `json:"id" validate:"required"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre" validate:"required"`
	Tipo   string `json:"tipo"`
}

// entryDTO is an /asientos-contables row.
type entryDTO struct {
	ID          int       `json:"id"`
	Codigo      string    `json:"codigo"`
	Fecha       string    `json:"fecha" validate:"required"`
	Descripcion string    `json:"descripcion"`
	Partidas    []lineDTO `json:"partidas" validate:"dive"`
}

// lineDTO is a partida. Debe and Haber arrive as numbers, numeric strings or
// null; an absent side stays invalid.
type lineDTO struct {
	CuentaID    int                 `json:"cuenta_id"`
	Cuenta      *accountDTO         `json:"cuenta"`
	Debe        decimal.NullDecimal `json:"debe"`
	Haber       decimal.NullDecimal `json:"haber"`
	Descripcion *string             `json:"descripcion"`
}

func (a accountDTO) toModel() model.Account {
	at, _ := model.ParseAccountType(a.Tipo)
	return model.Account{
		ID:   a.ID,
		Code: a.Codigo,
		Name: a.Nombre,
		Type: at,
	}
}

// dateLayouts are tried in order; Laravel serializes dates either way.
var dateLayouts = []string{model.DateFormat, time.RFC3339Nano, "2006-01-02 15:04:05"}

func parseFecha(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// toModel converts an entry, resolving partidas that carry only a cuenta_id
// through byID.
func (e entryDTO) toModel(byID map[int]model.Account) (model.JournalEntry, error) {
	date, err := parseFecha(e.Fecha)
	if err != nil {
		return model.JournalEntry{}, err
	}

	id := e.Codigo
	if id == "" {
		id = fmt.Sprintf("%d", e.ID)
	}

	entry := model.JournalEntry{
		ID:          id,
		Date:        date,
		Description: e.Descripcion,
		Lines:       make([]model.LineItem, 0, len(e.Partidas)),
	}
	for _, p := range e.Partidas {
		acct, ok := byID[p.CuentaID]
		if p.Cuenta != nil {
			acct = p.Cuenta.toModel()
		} else if !ok {
			acct = model.Account{ID: p.CuentaID, Name: fmt.Sprintf("cuenta %d", p.CuentaID)}
		}

		item := model.LineItem{Account: acct, Debit: p.Debe, Credit: p.Haber}
		if p.Descripcion != nil {
			item.Memo = *p.Descripcion
		}
		entry.Lines = append(entry.Lines, item)
	}
	return entry, nil
}

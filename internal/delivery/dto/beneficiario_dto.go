package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateBeneficiarioRequest struct {
	CodPersona    int `json:"cod_persona" validate:"required,gt=0"`
	CodSocio      int `json:"cod_socio" validate:"required,gt=0"`
	CodParentesco int `json:"cod_parentesco" validate:"required,gt=0"`
}

type CreateHistoricoRequest struct {
	CodTipoBeneficio int                 `json:"cod_tipo_beneficio" validate:"required,gt=0"`
	Peso             decimal.NullDecimal `json:"peso"`
	Talla            decimal.NullDecimal `json:"talla"`
	Hmg              decimal.NullDecimal `json:"hmg"`
	FechaInicio      string              `json:"fecha_inicio" validate:"omitempty,datetime=2006-01-02"`
	CodEstado        int                 `json:"cod_estado" validate:"required,gt=0"`
}

type CerrarHistoricoRequest struct {
	FechaTermino            string `json:"fecha_termino" validate:"required,datetime=2006-01-02"`
	CodMotivoInhabilitacion *int   `json:"cod_motivo_inhabilitacion" validate:"omitempty,gt=0"`
}

type DatosObstetricosRequest struct {
	FechaUltimaMenstruacion string `json:"fecha_ultima_menstruacion" validate:"omitempty,datetime=2006-01-02"`
	FechaProbableParto      string `json:"fecha_probable_parto" validate:"omitempty,datetime=2006-01-02"`
	FechaDeParto            string `json:"fecha_de_parto" validate:"omitempty,datetime=2006-01-02"`
	FechaFinLactancia       string `json:"fecha_fin_lactancia" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type BeneficiarioResponse struct {
	CodBeneficiario int              `json:"cod_beneficiario"`
	CodSocio        int              `json:"cod_socio"`
	Persona         *PersonaResponse `json:"persona,omitempty"`
	Parentesco      string           `json:"parentesco,omitempty"`
	FechaRegistro   string           `json:"fecha_registro"`
}

type HistoricoResponse struct {
	CodHistoricoBeneficiario int                       `json:"cod_historico_beneficiario"`
	CodBeneficiario          int                       `json:"cod_beneficiario"`
	TipoBeneficio            string                    `json:"tipo_beneficio,omitempty"`
	Peso                     decimal.NullDecimal       `json:"peso"`
	Talla                    decimal.NullDecimal       `json:"talla"`
	Hmg                      decimal.NullDecimal       `json:"hmg"`
	FechaInicio              string                    `json:"fecha_inicio"`
	FechaTermino             *string                   `json:"fecha_termino,omitempty"`
	Estado                   *EstadoResponse           `json:"estado,omitempty"`
	MotivoInhabilitacion     string                    `json:"motivo_inhabilitacion,omitempty"`
	DatosObstetricos         *DatosObstetricosResponse `json:"datos_obstetricos,omitempty"`
}

type DatosObstetricosResponse struct {
	CodDatoObstetrico       int     `json:"cod_dato_obstetrico"`
	FechaUltimaMenstruacion *string `json:"fecha_ultima_menstruacion,omitempty"`
	FechaProbableParto      *string `json:"fecha_probable_parto,omitempty"`
	FechaDeParto            *string `json:"fecha_de_parto,omitempty"`
	FechaFinLactancia       *string `json:"fecha_fin_lactancia,omitempty"`
}

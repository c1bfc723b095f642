package dto

type DashboardResponse struct {
	Usuario UsuarioResponse  `json:"usuario"`
	Totales DashboardTotales `json:"totales"`
}

type DashboardTotales struct {
	Beneficiarios int64 `json:"beneficiarios"`
	SociosActivos int64 `json:"socios_activos"`
	Pecosas       int64 `json:"pecosas"`
	Productos     int64 `json:"productos"`
	Asociaciones  int64 `json:"asociaciones"`
}

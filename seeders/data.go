package seeders

// Dados fixos usados pelos sideres. Mantidos separados para facilitar o
// ajuste sem tocar na lógica de inserção.

type manufacturerData struct {
	Name string
}

var manufacturersData = []manufacturerData{
	{Name: "Vivo"},
	{Name: "Claro"},
	{Name: "TIM"},
	{Name: "Algar"},
	{Name: "Teltonika"},
	{Name: "Mikrotik"},
	{Name: "Huawei"},
}

type statusData struct {
	Name string
	Code string
}

var statusesData = []statusData{
	{Name: "Disponível", Code: "AVAILABLE"},
	{Name: "Em uso", Code: "IN_USE"},
	{Name: "Em manutenção", Code: "MAINTENANCE"},
	{Name: "Desativado", Code: "RETIRED"},
}

type planData struct {
	Name string
	GB   int
}

var plansData = []planData{
	{Name: "Plano 5GB", GB: 5},
	{Name: "Plano 10GB", GB: 10},
	{Name: "Plano 20GB", GB: 20},
	{Name: "Plano 50GB", GB: 50},
}

type clientData struct {
	Name    string
	Company string
}

var demoClientsData = []clientData{
	{Name: "Fazenda Santa Luzia", Company: "Agro Santa Luzia LTDA"},
	{Name: "Transportadora Rota Sul", Company: "Rota Sul Logística"},
	{Name: "Condomínio Vista Verde", Company: "Vista Verde Administração"},
}

type assetData struct {
	Type         string
	SolutionID   *uint64
	Manufacturer string
	ICCID        string
	LineNumber   string
	Radio        string
	SerialNumber string
	Model        string
}

func solution(id uint64) *uint64 { return &id }

var demoAssetsData = []assetData{
	{Type: "EQUIPMENT", SolutionID: solution(1), Manufacturer: "Teltonika", Radio: "RUT-0001", SerialNumber: "TL202400001", Model: "RUT240"},
	{Type: "EQUIPMENT", SolutionID: solution(2), Manufacturer: "Mikrotik", Radio: "LHG-0002", SerialNumber: "MK202400002", Model: "LHG LTE6"},
	{Type: "EQUIPMENT", SolutionID: solution(4), Manufacturer: "Huawei", Radio: "WIFI-0003", SerialNumber: "HW202400003", Model: "B311"},
	{Type: "CHIP", SolutionID: solution(11), Manufacturer: "Vivo", ICCID: "895511000000000001", LineNumber: "11999990001"},
	{Type: "CHIP", SolutionID: solution(11), Manufacturer: "Claro", ICCID: "895521000000000002", LineNumber: "11999990002"},
	{Type: "CHIP", SolutionID: solution(11), Manufacturer: "TIM", ICCID: "895531000000000003", LineNumber: "11999990003"},
}

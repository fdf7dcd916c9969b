package reference

// Static Peru location data for the checkout address form.

type Department struct {
	Name      string   `json:"name"`
	Provinces []string `json:"provinces"`
}

var departments = []Department{
	{Name: "Amazonas", Provinces: []string{"Chachapoyas", "Bagua", "Bongará", "Condorcanqui", "Luya", "Rodríguez de Mendoza", "Utcubamba"}},
	{Name: "Áncash", Provinces: []string{"Huaraz", "Casma", "Huari", "Santa", "Yungay"}},
	{Name: "Apurímac", Provinces: []string{"Abancay", "Andahuaylas", "Antabamba", "Aymaraes", "Cotabambas", "Chincheros", "Grau"}},
	{Name: "Arequipa", Provinces: []string{"Arequipa", "Camaná", "Caravelí", "Castilla", "Caylloma", "Condesuyos", "Islay", "La Unión"}},
	{Name: "Ayacucho", Provinces: []string{"Huamanga", "Cangallo", "Huanta", "La Mar", "Lucanas", "Parinacochas", "Sucre", "Víctor Fajardo"}},
	{Name: "Cajamarca", Provinces: []string{"Cajamarca", "Cajabamba", "Celendín", "Chota", "Contumazá", "Cutervo", "Hualgayoc", "Jaén", "San Ignacio", "San Marcos", "San Miguel", "San Pablo", "Santa Cruz"}},
	{Name: "Callao", Provinces: []string{"Callao"}},
	{Name: "Cusco", Provinces: []string{"Cusco", "Acomayo", "Anta", "Calca", "Canas", "Canchis", "Chumbivilcas", "Espinar", "La Convención", "Paruro", "Paucartambo", "Quispicanchi", "Urubamba"}},
	{Name: "Huancavelica", Provinces: []string{"Huancavelica", "Acobamba", "Angaraes", "Castrovirreyna", "Churcampa", "Huaytará", "Tayacaja"}},
	{Name: "Huánuco", Provinces: []string{"Huánuco", "Ambo", "Dos de Mayo", "Huacaybamba", "Huamalíes", "Leoncio Prado", "Marañón", "Pachitea", "Puerto Inca", "Lauricocha", "Yarowilca"}},
	{Name: "Ica", Provinces: []string{"Ica", "Chincha", "Nazca", "Palpa", "Pisco"}},
	{Name: "Junín", Provinces: []string{"Huancayo", "Concepción", "Chanchamayo", "Jauja", "Junín", "Satipo", "Tarma", "Yauli", "Chupaca"}},
	{Name: "La Libertad", Provinces: []string{"Trujillo", "Ascope", "Bolívar", "Chepén", "Julcán", "Otuzco", "Pacasmayo", "Pataz", "Sánchez Carrión", "Santiago de Chuco", "Gran Chimú", "Virú"}},
	{Name: "Lambayeque", Provinces: []string{"Chiclayo", "Ferreñafe", "Lambayeque"}},
	{Name: "Lima", Provinces: []string{"Lima", "Barranca", "Cajatambo", "Canta", "Cañete", "Huaral", "Huarochirí", "Huaura", "Oyón", "Yauyos"}},
	{Name: "Loreto", Provinces: []string{"Maynas", "Alto Amazonas", "Loreto", "Mariscal Ramón Castilla", "Requena", "Ucayali", "Datem del Marañón", "Putumayo"}},
	{Name: "Madre de Dios", Provinces: []string{"Tambopata", "Manu", "Tahuamanu"}},
	{Name: "Moquegua", Provinces: []string{"Mariscal Nieto", "General Sánchez Cerro", "Ilo"}},
	{Name: "Pasco", Provinces: []string{"Pasco", "Daniel Alcides Carrión", "Oxapampa"}},
	{Name: "Piura", Provinces: []string{"Piura", "Ayabaca", "Huancabamba", "Morropón", "Paita", "Sullana", "Talara", "Sechura"}},
	{Name: "Puno", Provinces: []string{"Puno", "Azángaro", "Carabaya", "Chucuito", "El Collao", "Huancané", "Lampa", "Melgar", "Moho", "San Antonio de Putina", "San Román", "Sandia", "Yunguyo"}},
	{Name: "San Martín", Provinces: []string{"Moyobamba", "Bellavista", "El Dorado", "Huallaga", "Lamas", "Mariscal Cáceres", "Picota", "Rioja", "San Martín", "Tocache"}},
	{Name: "Tacna", Provinces: []string{"Tacna", "Candarave", "Jorge Basadre", "Tarata"}},
	{Name: "Tumbes", Provinces: []string{"Tumbes", "Contralmirante Villar", "Zarumilla"}},
	{Name: "Ucayali", Provinces: []string{"Coronel Portillo", "Atalaya", "Padre Abad", "Purús"}},
}

func Departments() []Department {
	return departments
}

func DepartmentNames() []string {
	names := make([]string, len(departments))
	for i, d := range departments {
		names[i] = d.Name
	}
	return names
}

func ProvincesOf(department string) []string {
	for _, d := range departments {
		if d.Name == department {
			return d.Provinces
		}
	}
	return nil
}

func IsValidDepartment(department string) bool {
	return ProvincesOf(department) != nil
}

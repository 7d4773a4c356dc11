package catalog

import "github.com/GiraffosCom/boleta-scan/internal/models"

// CategoryKeywords associates a spending category with the normalized
// uppercase product tokens that signal it.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// ProductKeywords lists the per-category product dictionaries in scoring
// order. On a score tie the earlier category wins, so the order is part of
// the classification contract.
var ProductKeywords = []CategoryKeywords{
	{
		Category: models.CategoryGroceries,
		Keywords: []string{
			// Dairy
			"LECHE", "YOGURT", "YOGHURT", "QUESO", "MANTEQUILLA", "CREMA", "QUESILLO",
			// Meat
			"POLLO", "CARNE", "CERDO", "PAVO", "JAMON", "SALCHICHA", "VIENESA", "LONGANIZA",
			"CHORIZO", "TOCINO", "COSTILLA", "FILETE", "MOLIDA", "CHULETA",
			// Bakery
			"PAN", "MARRAQUETA", "HALLULLA", "INTEGRAL", "MOLDE",
			// Produce
			"MANZANA", "PLATANO", "BANANA", "NARANJA", "LIMON", "TOMATE", "LECHUGA",
			"PAPA", "CEBOLLA", "ZANAHORIA", "PALTA", "UVA", "FRUTILLA", "SANDIA",
			// Pantry staples
			"ARROZ", "FIDEO", "PASTA", "TALLARINES", "SPAGUETTI", "ACEITE", "AZUCAR",
			"SAL", "HARINA", "ATUN", "CONSERVA", "SALSA", "MAYONESA", "KETCHUP", "MOSTAZA",
			// Beverages
			"COCA", "PEPSI", "FANTA", "SPRITE", "AGUA", "MINERAL", "JUGO", "NECTAR",
			"CERVEZA", "VINO", "PISCO", "BEBIDA", "GASEOSA", "ENERGETICA",
			// Snacks
			"GALLETA", "CHOCOLATE", "CARAMELO", "PAPA FRITA", "CHIPS", "RAMITAS", "DORITOS",
			"CEREAL", "BARRA", "HELADO", "MANI",
			// Prepared food
			"PIZZA", "EMPANADA", "SANDWICH", "SUSHI", "ENSALADA", "ALMUERZO", "MENU",
			"COMBO", "HAMBURGUESA", "COMPLETO", "HOTDOG",
		},
	},
	{
		Category: models.CategoryHealth,
		Keywords: []string{
			// Common drugs
			"PARACETAMOL", "IBUPROFENO", "ASPIRINA", "TAPSIN", "KITADOL", "ZALDIAR",
			"NASTIZOL", "ANTIFLU", "PROPOLEO", "VITAMINA", "OMEPRAZOL", "LORATADINA",
			"CLONAZEPAM", "ALPRAZOLAM", "SERTRALINA", "LOSARTAN", "ATORVASTATINA",
			"METFORMINA", "EUTIROX", "LEVOTIROXINA", "ANTICONCEPTIVO",
			// Medical classes
			"MEDICAMENTO", "FARMACO", "REMEDIO", "ANTIBIOTICO", "ANALGESICO",
			"ANTIINFLAMATORIO", "ANTIHISTAMINICO", "ANTIACIDO", "LAXANTE",
			// Medical supplies
			"TERMOMETRO", "JERINGA", "ALCOHOL", "GASA", "VENDA", "PARCHE", "CURITA",
			"MASCARILLA", "GUANTE", "SUERO", "INHALADOR",
			// Supplements
			"SUPLEMENTO", "PROTEINA", "CREATINA", "COLAGENO", "OMEGA", "PROBIOTICO",
			"MULTIVITAMINICO", "CALCIO", "HIERRO", "MAGNESIO", "ZINC",
		},
	},
	{
		Category: models.CategoryTransport,
		Keywords: []string{
			// Fuel
			"BENCINA", "GASOLINA", "DIESEL", "PETROLEO", "GAS", "COMBUSTIBLE",
			"OCTANO", "93", "95", "97",
			// Car services
			"LUBRICANTE", "ACEITE MOTOR", "FILTRO", "NEUMATICO", "LLANTA",
			"LAVADO", "ESTACIONAMIENTO", "PEAJE", "TAG", "AUTOPISTA",
			// Public transport and rideshare
			"PASAJE", "BOLETO", "METRO", "MICRO", "BUS", "TRANSANTIAGO", "RED", "BIP",
			"UBER", "DIDI", "CABIFY", "TAXI", "TRANSFER",
		},
	},
	{
		Category: models.CategoryHousehold,
		Keywords: []string{
			// Cleaning
			"DETERGENTE", "LAVALOZA", "CLORO", "DESINFECTANTE", "LIMPIADOR",
			"ESCOBA", "TRAPERO", "ESPONJA", "PAPEL HIGIENICO", "SERVILLETA", "TOALLA NOVA",
			"SUAVIZANTE", "QUITAMANCHAS", "AROMATIZANTE", "AMBIENTADOR",
			// Kitchen
			"OLLA", "SARTEN", "PLATO", "VASO", "TAZA", "CUBIERTO", "CUCHILLO",
			// Hardware
			"TORNILLO", "CLAVO", "PINTURA", "BROCHA", "MARTILLO", "DESTORNILLADOR",
			"TALADRO", "CABLE", "ENCHUFE", "AMPOLLETA", "LED", "FOCO",
			// Furniture
			"MUEBLE", "SILLA", "MESA", "ESTANTE", "CORTINA", "ALFOMBRA", "COJIN",
		},
	},
	{
		Category: models.CategoryApparel,
		Keywords: []string{
			// Garments
			"POLERA", "CAMISA", "PANTALON", "JEANS", "SHORT", "FALDA", "VESTIDO",
			"CHAQUETA", "POLAR", "PARKA", "CHALECO", "SWEATER", "POLERON",
			"ROPA INTERIOR", "CALZON", "CALZONCILLO", "SOSTEN", "CALCETINES", "MEDIAS",
			// Footwear
			"ZAPATO", "ZAPATILLA", "SANDALIA", "BOTA", "TACO", "ALPARGATA",
			// Accessories
			"CINTURON", "CARTERA", "BOLSO", "MOCHILA", "BILLETERA", "GORRO", "BUFANDA",
			"GUANTES", "RELOJ", "LENTES", "ANTEOJOS",
		},
	},
	{
		Category: models.CategoryEntertainment,
		Keywords: []string{
			// Cinema and shows
			"ENTRADA", "CINE", "PELICULA", "FUNCION", "TEATRO", "CONCIERTO", "SHOW",
			"ESPECTACULO", "CIRCO", "MUSEO", "EXHIBICION",
			// Gaming and streaming
			"VIDEOJUEGO", "JUEGO", "PLAYSTATION", "XBOX", "NINTENDO", "STEAM",
			"SPOTIFY", "NETFLIX", "DISNEY", "HBO", "AMAZON PRIME", "SUSCRIPCION",
			// Sports and recreation
			"GIMNASIO", "GYM", "PISCINA", "CANCHA", "BOWLING", "KARAOKE",
			"ARRIENDO", "BICICLETA", "SKATE",
		},
	},
	{
		Category: models.CategoryEducation,
		Keywords: []string{
			// School supplies
			"CUADERNO", "LAPIZ", "LAPICERA", "BOLIGRAFO", "GOMA", "CORRECTOR",
			"REGLA", "COMPAS", "TIJERA", "PEGAMENTO", "CARPETA", "ARCHIVADOR",
			"DESTACADOR", "PLUMON", "MARCADOR",
			// Books
			"LIBRO", "TEXTO", "DICCIONARIO", "ENCICLOPEDIA", "REVISTA", "DIARIO",
			// Tuition and courses
			"MATRICULA", "ARANCEL", "MENSUALIDAD", "CURSO", "TALLER", "CLASE",
			"CERTIFICACION", "DIPLOMA", "EXAMEN", "FOTOCOPIAS", "IMPRESION", "ANILLADO",
		},
	},
	{
		Category: models.CategoryServices,
		Keywords: []string{
			// Telecom
			"TELEFONO", "CELULAR", "PLAN", "PREPAGO", "RECARGA", "GIGAS", "INTERNET",
			"WIFI", "FIBRA", "CABLE", "TELEVISION",
			// Utilities
			"LUZ", "ELECTRICIDAD", "AGUA", "GAS NATURAL", "CALEFACCION",
			// Tech gear
			"COMPUTADOR", "NOTEBOOK", "LAPTOP", "TABLET", "IPAD", "MOUSE", "TECLADO",
			"MONITOR", "PANTALLA", "AUDIFONOS", "PARLANTE", "CARGADOR", "CABLE USB",
			"PENDRIVE", "DISCO DURO", "MEMORIA", "IMPRESORA", "TINTA", "TONER",
			// Professional services
			"CONSULTA", "ASESORIA", "NOTARIA", "TRAMITE", "CERTIFICADO",
		},
	},
	{
		Category: models.CategoryPersonalCare,
		Keywords: []string{
			// Personal care
			"SHAMPOO", "ACONDICIONADOR", "JABON", "GEL", "DESODORANTE", "PERFUME",
			"COLONIA", "CREMA", "LOCION", "BLOQUEADOR", "PROTECTOR SOLAR",
			// Makeup
			"MAQUILLAJE", "BASE", "POLVO", "RUBOR", "SOMBRA", "RIMEL", "MASCARA",
			"LABIAL", "LIPSTICK", "DELINEADOR", "ESMALTE", "UÑA",
			// Beauty services
			"CORTE", "PEINADO", "TINTURA", "MECHAS", "MANICURE", "PEDICURE",
			"DEPILACION", "TRATAMIENTO", "FACIAL", "MASAJE", "SPA", "PELUQUERIA",
		},
	},
}

package bas

// Names is a static lookup of commonly used BAS accounts (aktiebolag).
var Names = map[string]string{
	"1010": "Utvecklingsutgifter",
	"1030": "Patent",
	"1070": "Goodwill",
	"1110": "Byggnader",
	"1130": "Mark",
	"1210": "Maskiner och andra tekniska anläggningar",
	"1220": "Inventarier och verktyg",
	"1229": "Ackumulerade avskrivningar på inventarier och verktyg",
	"1250": "Datorer",
	"1259": "Ackumulerade avskrivningar på datorer",
	"1380": "Andra långfristiga fordringar",
	"1460": "Lager av handelsvaror",
	"1510": "Kundfordringar",
	"1610": "Kortfristiga fordringar hos anställda",
	"1630": "Avräkning för skatter och avgifter (skattekonto)",
	"1650": "Momsfordran",
	"1680": "Andra kortfristiga fordringar",
	"1710": "Förutbetalda hyreskostnader",
	"1790": "Övriga förutbetalda kostnader och upplupna intäkter",
	"1910": "Kassa",
	"1920": "PlusGiro",
	"1930": "Företagskonto / affärskonto",
	"1940": "Övriga bankkonton",
	"2081": "Aktiekapital",
	"2086": "Reservfond",
	"2091": "Balanserad vinst eller förlust",
	"2098": "Vinst eller förlust från föregående år",
	"2099": "Årets resultat",
	"2110": "Periodiseringsfonder",
	"2150": "Ackumulerade överavskrivningar",
	"2220": "Avsättningar för garantier",
	"2350": "Andra långfristiga skulder till kreditinstitut",
	"2393": "Lån från närstående personer, långfristig del",
	"2410": "Andra kortfristiga låneskulder till kreditinstitut",
	"2440": "Leverantörsskulder",
	"2510": "Skatteskulder",
	"2611": "Utgående moms på försäljning inom Sverige, 25 %",
	"2614": "Utgående moms omvänd skattskyldighet, 25 %",
	"2621": "Utgående moms på försäljning inom Sverige, 12 %",
	"2631": "Utgående moms på försäljning inom Sverige, 6 %",
	"2641": "Debiterad ingående moms",
	"2645": "Beräknad ingående moms på förvärv från utlandet",
	"2650": "Redovisningskonto för moms",
	"2710": "Personalskatt",
	"2730": "Lagstadgade sociala avgifter och särskild löneskatt",
	"2890": "Övriga kortfristiga skulder",
	"2893": "Skulder till närstående personer, kortfristig del",
	"2920": "Upplupna semesterlöner",
	"2990": "Övriga upplupna kostnader och förutbetalda intäkter",
	"3001": "Försäljning inom Sverige, 25 % moms",
	"3002": "Försäljning inom Sverige, 12 % moms",
	"3003": "Försäljning inom Sverige, 6 % moms",
	"3004": "Försäljning inom Sverige, momsfri",
	"3040": "Försäljning av tjänster",
	"3305": "Försäljning tjänster till land utanför EU",
	"3308": "Försäljning tjänster till annat EU-land",
	"3740": "Öres- och kronutjämning",
	"3910": "Hyres- och arrendeintäkter",
	"3960": "Valutakursvinster på fordringar och skulder av rörelsekaraktär",
	"3990": "Övriga ersättningar och intäkter",
	"4010": "Inköp av varor och material",
	"4535": "Inköp av tjänster från annat EU-land, 25 %",
	"4600": "Legoarbeten och underentreprenader",
	"5010": "Lokalhyra",
	"5410": "Förbrukningsinventarier",
	"5420": "Programvaror",
	"5460": "Förbrukningsmaterial",
	"5611": "Drivmedel för personbilar",
	"5800": "Resekostnader",
	"5910": "Annonsering",
	"6071": "Representation, avdragsgill",
	"6072": "Representation, ej avdragsgill",
	"6110": "Kontorsmateriel",
	"6212": "Mobiltelefon",
	"6230": "Datakommunikation",
	"6530": "Redovisningstjänster",
	"6570": "Bankkostnader",
	"7010": "Löner till kollektivanställda",
	"7210": "Löner till tjänstemän",
	"7220": "Löner till företagsledare",
	"7510": "Arbetsgivaravgifter",
	"7690": "Övriga personalkostnader",
	"7832": "Avskrivningar på inventarier och verktyg",
	"7834": "Avskrivningar på datorer",
	"8310": "Ränteintäkter från omsättningstillgångar",
	"8410": "Räntekostnader för långfristiga skulder",
	"8423": "Räntekostnader för skatter och avgifter",
	"8811": "Avsättning till periodiseringsfond",
	"8819": "Återföring från periodiseringsfond",
	"8910": "Skatt som belastar årets resultat",
	"8999": "Årets resultat",
}

// Namer resolves display labels for account codes.
type Namer interface {
	Name(code string) (string, bool)
}

// StaticNames resolves labels from Names.
type StaticNames struct{}

// Name implements Namer.
func (StaticNames) Name(code string) (string, bool) {
	if len(code) > 4 {
		code = code[:4]
	}
	n, ok := Names[code]
	return n, ok
}

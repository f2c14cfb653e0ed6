package search

// defaultRulesVersion tags the built-in rule set. Bump it whenever an entry
// below changes so ranking regressions can be traced to a data revision.
const defaultRulesVersion = "2025.1"

// defaultStems is the curated irregular-form stem table for the catalog's
// high-frequency vocabulary. Keys and values are stored normalized
// (lower case, "ё" folded to "е"). Each entry maps an inflected form the
// suffix heuristics handle poorly to its canonical truncated roots.
var defaultStems = map[string][]string{
	"излишки":       {"излиш", "излишек", "излишк"},
	"излишек":       {"излиш", "излишек", "излишк"},
	"расхождение":   {"расхожд", "расхожден"},
	"расхождения":   {"расхожд", "расхожден"},
	"повреждение":   {"поврежден", "поврежд"},
	"повреждения":   {"поврежден", "поврежд"},
	"зафиксировать": {"зафиксир", "фиксир"},
	"значительный":  {"значительн", "значим"},
	"значительные":  {"значительн", "значим"},
	"недовоз":       {"недовоз", "недов"},
	"недовоза":      {"недовоз", "недов"},
	"прием":         {"прием", "принима"},
	"пустой":        {"пуст", "пусто"},
	"пустая":        {"пуст", "пусто"},
	"пустые":        {"пуст", "пусто"},
	"упаковка":      {"упаковк", "упаков"},
	"упаковки":      {"упаковк", "упаков"},
	"упаковку":      {"упаковк", "упаков"},
	"селлер":        {"селлер", "селер"},
	"селлера":       {"селлер", "селер"},
	"перевозка":     {"перевоз", "перевозк"},
	"перевозки":     {"перевоз", "перевозк"},
	"размещение":    {"размещен", "размещ"},
	"проверка":      {"провер", "проверк"},
	"целостности":   {"целост", "целостн"},
	"товара":        {"товар"},
	"товары":        {"товар"},
	"товаров":       {"товар"},
	"засыл":         {"засыл"},
	"засыла":        {"засыл"},
	"дубль":         {"дубл"},
	"дубли":         {"дубл"},
	"оформление":    {"оформлен", "оформ"},
	"приемка":       {"приемк"},
	"выдача":        {"выдач"},
	"возврат":       {"возврат"},
	"возвраты":      {"возврат"},
	"отправка":      {"отправк"},
	"отправки":      {"отправк"},
	"транспорт":     {"транспорт"},
	"накладная":     {"накладн"},
	"ттн":           {"ттн", "транспортн"},
	"штрихкод":      {"штрихкод", "шк"},
	"штрихкода":     {"штрихкод", "шк"},
}

// defaultBonuses are the curated co-occurrence rules. The first four pin
// known hard queries to their intended records; the last biases order
// fulfillment (B3) over transport intake for issuance queries.
var defaultBonuses = []Rule{
	{Terms: []string{"излиш"}, Targets: []string{"B1.5.2"}, Bonus: 30},
	{Terms: []string{"пуст", "упаков"}, Targets: []string{"B1.6", "B1.6.2"}, Bonus: 30},
	{Terms: []string{"недовоз"}, Targets: []string{"B1.5.1"}, Bonus: 30},
	{Terms: []string{"дубл"}, Targets: []string{"B1.5.2"}, Bonus: 30},
	{Terms: []string{"выдач"}, Targets: []string{"B3"}, Bonus: 30},
}

package memory

import "github.com/calcettolab/torneo-api/internal/domain/sheet"

// seedTabs is a small but complete demo season: two groups of four, a
// played round, and a bracket with the quarterfinals underway.
func seedTabs() map[string][][]string {
	return map[string][][]string{
		sheet.TabTeams: {
			{"T1", "Draghi Rossi", "🐉", "Aldo Neri", "Bea Conti", "G1", "Girone A"},
			{"T2", "Lupi Grigi", "🐺", "Carla Ricci", "Dino Gallo", "G1", "Girone A"},
			{"T3", "Falchi Blu", "🦅", "Elsa Marini", "Fabio Costa", "G1", "Girone A"},
			{"T4", "Orsi Bruni", "🐻", "Gino Ferri", "Hana Sala", "G1", "Girone A"},
			{"T5", "Aquile Nere", "🦅", "Ivo Bruno", "Lia Greco", "G2", "Girone B"},
			{"T6", "Tori Verdi", "🐂", "Mia Fontana", "Nino Villa", "G2", "Girone B"},
			{"T7", "Squali Grigi", "🦈", "Omar Leone", "Pia Serra", "G2", "Girone B"},
			{"T8", "Volpi Rosse", "🦊", "Rita Monti", "Sandro Vitale", "G2", "Girone B"},
		},
		sheet.TabMatches: {
			{"A1", "T1", "Draghi Rossi", "T2", "Lupi Grigi", "7", "4", "2026-05-03", "1", "5", "2", "0", "0", "0", "3", "1", "0", "0"},
			{"A2", "T3", "Falchi Blu", "T4", "Orsi Bruni", "12", "10", "2026-05-03", "0", "8", "4", "0", "0", "2", "6", "4", "1", "0"},
			{"A3", "T5", "Aquile Nere", "T6", "Tori Verdi", "5", "5", "2026-05-03", "0", "3", "2", "0", "0", "1", "4", "1", "0", "1"},
			{"A4", "T7", "Squali Grigi", "T8", "Volpi Rosse", "6", "2", "2026-05-03", "0", "4", "2", "0", "0", "0", "1", "1", "0", "0"},
			{"A5", "T1", "Draghi Rossi", "T3", "Falchi Blu", "8", "6", "2026-05-10", "2", "6", "2", "0", "0", "0", "4", "2", "0", "0"},
			{"A6", "T2", "Lupi Grigi", "T4", "Orsi Bruni", "3", "3", "2026-05-10", "0", "2", "1", "0", "0", "0", "2", "1", "0", "0"},
		},
		sheet.TabBracket: {
			{"Q1", "T1", "T8", "9", "5", "TRUE", "Quarti", "left"},
			{"Q2", "T3", "T6", "0", "0", "FALSE", "Quarti", "left"},
			{"Q3", "T5", "T4", "0", "0", "FALSE", "Quarti", "right"},
			{"Q4", "T7", "T2", "0", "0", "FALSE", "Quarti", "right"},
			{"S1", "", "", "0", "0", "FALSE", "Semifinali", "left"},
			{"S2", "", "", "0", "0", "FALSE", "Semifinali", "right"},
			{"F1", "", "", "0", "0", "FALSE", "Finale", ""},
		},
	}
}

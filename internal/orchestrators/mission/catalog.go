package mission

import "github.com/SnickALt21/juego-pardo/internal/entities"

// catalog is the static table of PvE opponents. Defined at process
// start, never mutated.
var catalog = map[int]entities.Mission{
	1:  {ID: 1, Name: "Rata Salvaje", HP: 50, Power: 5, Dexterity: 3, Endurance: 2, Exp: 50, Gold: 10},
	2:  {ID: 2, Name: "Lobo Hambriento", HP: 80, Power: 8, Dexterity: 5, Endurance: 4, Exp: 80, Gold: 15},
	3:  {ID: 3, Name: "Goblin Ladrón", HP: 120, Power: 12, Dexterity: 8, Endurance: 6, Exp: 120, Gold: 25},
	4:  {ID: 4, Name: "Orco Guerrero", HP: 180, Power: 18, Dexterity: 10, Endurance: 12, Exp: 180, Gold: 40},
	5:  {ID: 5, Name: "Troll de Piedra", HP: 250, Power: 25, Dexterity: 12, Endurance: 20, Exp: 250, Gold: 60},
	6:  {ID: 6, Name: "Araña Gigante", HP: 200, Power: 22, Dexterity: 18, Endurance: 15, Exp: 220, Gold: 50},
	7:  {ID: 7, Name: "Caballero Oscuro", HP: 300, Power: 30, Dexterity: 20, Endurance: 25, Exp: 300, Gold: 80},
	8:  {ID: 8, Name: "Demonio Menor", HP: 400, Power: 40, Dexterity: 25, Endurance: 30, Exp: 400, Gold: 120},
	9:  {ID: 9, Name: "Dragón Joven", HP: 550, Power: 50, Dexterity: 30, Endurance: 40, Exp: 550, Gold: 180},
	10: {ID: 10, Name: "Señor Oscuro", HP: 750, Power: 65, Dexterity: 40, Endurance: 50, Exp: 750, Gold: 250},
}

// CatalogSize returns the number of missions in the catalog
func CatalogSize() int {
	return len(catalog)
}

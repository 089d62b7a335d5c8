package domain

// Hierarchy is the ordered root-category table. Classification scans it
// in declaration order and the first root listing a product's raw label
// wins. The table is read-only after startup and safe for concurrent
// reads. Labels must stay in sync with the data-entry category values or
// products fall into the catch-all root.
type Hierarchy []HierarchyEntry

type HierarchyEntry struct {
	Slug          string
	Name          string
	Icon          string
	Subcategories []string
}

// Catch-all root for labels no table entry claims.
const (
	FallbackRootSlug = "autres"
	FallbackRootName = "Autres"
)

// DefaultHierarchy is the production table for the hardware catalog.
var DefaultHierarchy = Hierarchy{
	{
		Slug: "serrures",
		Name: "Serrures",
		Icon: "/categories/serrures.svg",
		Subcategories: []string{
			"Serrures porte en bois / sécurité",
			"Serrures bois",
			"Serrures bois / portes blindées",
			"Serrures portes blindées",
			"Serrures alu",
			"Serrures électroniques",
			"Serrure électronique (connectée)",
			"Serrure électrique",
			"Serrures de meuble",
			"Serrures multipoints",
			"Serrures 3 points",
			"Serrures 3 et 5 points",
			"Serrures de sûreté (gâche tirage)",
			"Serrures garages / à tirage",
			"Serrures (ensemble)",
			"Serrures (antipanique)",
			"Serrures (coupe-feu)",
			"Serrure coupe-feu (antipanique)",
			"Serrure encastrée pour antipanique",
			"Serrure magnétique à larder",
			"Serrures",
			"Verrous / Serrures magnétiques",
		},
	},
	{
		Slug: "cylindres",
		Name: "Cylindres",
		Icon: "/categories/cylindres.svg",
		Subcategories: []string{
			"Cylindres",
			"Cylindres à bouton",
			"Cylindres avec passes",
			"Cylindres haute sécurité",
			"Demi-cylindres",
			"Demi-cylindres à bouton",
		},
	},
	{
		Slug: "poignees",
		Name: "Poignées",
		Icon: "/categories/poignees.svg",
		Subcategories: []string{
			"Poignées / Béquilles",
			"Poignées / Accessoires",
			"Poignée palière",
			"Poignée plaque",
			"Poignées plaques",
			"Béquilles rosaces",
			"Béquilles",
			"Poignée externe pour antipanique avec cylindre",
			"Poignée externe pour antipanique avec demi-cylindre",
		},
	},
	{
		Slug: "ferme-portes",
		Name: "Ferme-portes",
		Icon: "/categories/ferme-portes.svg",
		Subcategories: []string{
			"Fermes-portes",
			"Fermes-portes encastrés",
			"Pivots de sol hydraulique",
			"Opérateur de porte battante",
		},
	},
	{
		Slug: "coulissant",
		Name: "Systèmes coulissants",
		Icon: "/categories/coulissant.svg",
		Subcategories: []string{
			"Système coulissant apparent soft close",
			"Système coulissant de placard apparent",
			"Système coulissant de porte apparent",
			"Système coulissant de porte escamotable",
			"Système coulissant de porte",
			"Système coulissant pour meuble",
			"Système coulissant soft close",
			"Système coulissant télescopique",
			"Système de porte coulissante de placard",
			"Système de porte pliante",
			"Système accordéon de porte",
			"Accessoires pour système coulissant",
		},
	},
	{
		Slug: "automatismes",
		Name: "Automatismes",
		Icon: "/categories/automatismes.svg",
		Subcategories: []string{
			"Gâches électriques",
			"Ventouses électromagnétiques",
			"Ventouses électromagnétiques (arrêt de porte)",
			"Contrôle d'accès pour hôtels",
			"Solutions smart",
			"Caméras",
			"Accessoires serrure électrique",
		},
	},
	{
		Slug: "accessoires",
		Name: "Accessoires",
		Icon: "/categories/accessoires.svg",
		Subcategories: []string{
			"Accessoires",
			"Accessoires de serrurerie",
			"Accessoires de portes",
			"Accessoires de fixation",
			"Accessoires pour antipanique",
			"Charnières",
			"Charnières invisibles",
			"Charnières invisibles hydrauliques 3D",
			"Charnière de porte invisible",
			"Charnières (certifiées coupe-feu)",
			"Charnières verre",
			"Paumelles",
			"Butoirs de portes",
			"Butée / tampon",
			"Judas de porte",
			"Sélecteur de fermeture pour 2 vantaux",
		},
	},
	{
		Slug: "antipanique",
		Name: "Antipanique",
		Subcategories: []string{
			"Antipanique en applique 2 points",
			"Antipanique en applique mono-point",
			"Antipanique en applique monopoint",
			"Antipanique pour serrure encastrée",
			"Antipanique Touch Bar (ligne TOP)",
			"Antipanique Touch Bar",
			"Antipaniques Gamme Global",
			"Antipaniques Push Bar",
			"Module externe pour antipanique avec demi-cylindre",
		},
	},
	{
		Slug: "cadenas",
		Name: "Cadenas",
		Subcategories: []string{
			"Cadenas",
			"Cadenas à combinaison",
			"Cadenas anse blindée",
			"Cadenas anse protégée",
			"Cadenas avec alarme",
			"Cadenas biométrique",
			"Cadenas câble",
			"Cadenas disque",
			"Cadenas TSA",
			"Cadenas TSA (x2)",
			"Cadenas U",
		},
	},
	{
		Slug: "quincaillerie-meuble",
		Name: "Quincaillerie de meuble",
		Subcategories: []string{
			"Coulisses à billes",
			"Coulisses classiques",
			"Coulisses tandem à sortie partielle",
			"Coulisses tandem hydrauliques à sortie totale",
			"Coulisses tandem hydrauliques",
			"Tandem (coulisses tiroirs)",
			"Tandem Box sortie totale 16 mm",
			"TandemBox slim (sortie totale 16 mm)",
			"TandemBox slim hydraulique (sortie totale 16 mm, verre latéral)",
			"TandemBox slim hydraulique (sortie totale 16 mm)",
			"Tiroirs intérieurs",
			"Tiroirs de rangement",
			"Casiers tiroirs – sortie totale 16 mm",
			"Mécanisme relevant soft close",
			"Mécanisme relevant double portes soft close",
			"Vérin à gaz",
			"Pied de meuble",
			"Pied réglable",
			"Vérin/pied réglable",
		},
	},
	{
		Slug: "amenagement-interieur",
		Name: "Aménagement intérieur",
		Subcategories: []string{
			"Coin cuisine (plateaux d'angle)",
			"Coin cuisine (coulissant multi-niveaux)",
			"Coins cuisine",
			"Accessoires cuisine (muraux)",
			"Accessoires évier",
			"Accessoires sous-évier",
			"Panier sous-évier / multi-usage",
			"Égouttoir escamotable",
			"Module coulissant (bouteilles, etc.)",
			"Porte épices",
			"Poubelles",
			"Coin dressing (plateaux ronds)",
			"Coin dressing (3 plateaux)",
			"Coin dressing (plateau + crochets)",
			"Accessoires dressing – miroir",
			"Porte pantalon",
			"Porte chaussures vertical",
			"Porte chaussures (grille)",
			"Porte chaussures (plateau ajouré)",
			"Porte cravates",
			"Porte vestes (abattant 15 kg)",
			"Porte vestes et pantalon (carrousel bras)",
			"Porte vestes et pantalon (anneau)",
			"Crochet extractible / penderie",
			"Porte bijoux (organisateur)",
			"Plateaux à bijoux",
			"Panier vêtements (fond plein)",
			"Panier vêtements (grille)",
			"Tringle dressing (ronde) + accessoires",
			"Tringle dressing (rectangulaire) + accessoires",
			"Tendeur pour porte dressing",
			"Planche à repasser extractible",
			"Colonne",
			"Colonne (pivotante)",
			"Colonne coulissante",
			"Étagères escamotables",
			"Tiroir de rangement (avec séparateurs)",
			"Tiroir de rangement (panier)",
			"Tiroir à compartiments",
			"Tiroir (boîte)",
			"Tiroir coffre (lecteur d'empreintes)",
			"Module lumineux / accessoires",
			"Accessoires tiroirs",
			"Accessoires – Intérieurs tiroirs",
			"Accessoires – Tapis",
			"Accessoires Flowbox",
		},
	},
	{
		Slug: "profiles-aluminium",
		Name: "Profilés aluminium",
		Subcategories: []string{
			"Profiles en Aluminium",
			"Profilé",
			"Bâton maréchal",
		},
	},
	{
		Slug: "coffres-forts",
		Name: "Coffres forts",
		Subcategories: []string{
			"Coffres forts",
			"Coffres forts coupe-feu",
			"Coffres forts (armoire à fusils)",
			"Boîtes à clés murales",
			"Boîtes à monnaie / à clés",
			"Boîtes à monnaie à codes",
		},
	},
	{
		Slug: "autres",
		Name: "Autres",
		Subcategories: []string{
			"Escabeaux",
			"Outils de gestion",
			"Tirettes",
			"Tringle rideau / rail",
			"Fitting",
			"Bouton de tirage cuvette",
			"Poussoir",
			"Verrous / Tirage",
		},
	},
}

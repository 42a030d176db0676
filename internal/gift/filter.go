package gift

import (
	"sort"
	"strings"
)

// PageSize é o tamanho fixo de página da vitrine.
const PageSize = 10

// Filter devolve os presentes cujo nome ou descrição contém o termo
// (case-insensitive) e que pertencem à categoria. CategoryAll desliga o
// filtro de categoria. O resultado preserva a ordem de entrada.
func Filter(gifts []Gift, search, category string) []Gift {
	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)

	result := make([]Gift, 0, len(gifts))
	for _, g := range gifts {
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Name), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		if category != "" && category != CategoryAll && g.Category != category {
			continue
		}
		result = append(result, g)
	}
	return result
}

// SortByPrice devolve cópia ordenada por preço; SortNone preserva a ordem
// original (order_index).
func SortByPrice(gifts []Gift, order SortOrder) []Gift {
	result := make([]Gift, len(gifts))
	copy(result, gifts)

	switch order {
	case SortAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// Paginate recorta a página pedida (base 1) e devolve também o total de
// páginas. Página fora do intervalo volta para a primeira.
func Paginate(gifts []Gift, page, pageSize int) ([]Gift, int) {
	if pageSize <= 0 {
		pageSize = PageSize
	}

	totalPages := (len(gifts) + pageSize - 1) / pageSize
	if totalPages == 0 {
		return []Gift{}, 0
	}

	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(gifts) {
		end = len(gifts)
	}

	return gifts[start:end], totalPages
}

// Categories enumera as categorias distintas não vazias, precedidas pela
// categoria sintética, na ordem em que aparecem na lista.
func Categories(gifts []Gift) []string {
	seen := make(map[string]struct{})
	result := []string{CategoryAll}
	for _, g := range gifts {
		cat := strings.TrimSpace(g.Category)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		result = append(result, cat)
	}
	return result
}

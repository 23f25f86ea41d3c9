package systems

import (
	"container/heap"

	"github.com/szydell/ufoai/internal/domain"
)

// routeItem обертка для элемента очереди приоритетов
type routeItem struct {
	Pos      domain.GridPos
	Priority int // накопленная стоимость в TU. Чем меньше, тем раньше.
	Index    int // индекс в куче (нужен для update)
}

// routeQueue реализует heap.Interface (MinHeap по стоимости)
type routeQueue []*routeItem

func (pq routeQueue) Len() int { return len(pq) }

func (pq routeQueue) Less(i, j int) bool {
	return pq[i].Priority < pq[j].Priority
}

func (pq routeQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *routeQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*routeItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *routeQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// update понижает стоимость уже стоящей в очереди клетки
func (pq *routeQueue) update(item *routeItem, priority int) {
	item.Priority = priority
	heap.Fix(pq, item.Index)
}

package main

import (
	"fmt"

	"github.com/aglyzov/go-patricia/patricia"
)

func main() {
	m := patricia.New[int, int]()
	fmt.Println(m.Empty())

	m.Insert(0, 0)
	fmt.Println(m.Find(0).Value())
	fmt.Println(m.Empty())

	m.Clear()
	fmt.Println(m.Empty())

	for i := 0; i < 4; i++ {
		m.Insert(i, i)
	}
	fmt.Println(m.Empty())

	for i := 0; i < 4; i++ {
		fmt.Println(m.Find(i).Value())
	}

	m2 := m.Clone()
	fmt.Println(m2.Empty())

	m2.Erase(2)
	fmt.Printf("m2.Find(2) is end: %v, m.Find(2) = %v\n", m2.Find(2).IsEnd(), m.Find(2).Value())

	fmt.Println("------")
	m.DebugDump()
	fmt.Println("------")
	m2.DebugDump()
	fmt.Println("------")

	m3 := patricia.NewPointer[int, int]()
	i := 0
	m3.Insert(&i, 0)
	fmt.Println(m3.Empty())

	if _, err := m3.At(new(int)); err != nil {
		fmt.Println(err)
	}
}

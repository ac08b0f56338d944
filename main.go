package main

import (
	"fmt"
	"os"
	"time"

	"github.com/antgroup/livebar/pkg/progress"
)

func main() {
	fmt.Println("This is a text printed before the progress bar.")
	time.Sleep(time.Second)

	it := progress.Count(os.Stdout, 10)
	for i := range it.All() {
		fmt.Fprintf(it, "Doing some computation for i=%d... ", i)
		time.Sleep(100 * time.Millisecond)
		fmt.Fprintln(it, "Done!")
		time.Sleep(100 * time.Millisecond)
	}
	fmt.Println("This is a text printed after the progress bar.")

	fmt.Println("\n\nRunning the progress bar as a scope.")
	s := progress.Start(os.Stdout, 0)
	for i := 0; i < 10; i++ {
		fmt.Fprintf(s, "Doing some computation for i=%d... ", i)
		time.Sleep(100 * time.Millisecond)
		fmt.Fprintln(s, "Done!")
		time.Sleep(100 * time.Millisecond)
		_ = s.SetProgress(float64(i+1) / 10)
	}
	_ = s.Close()
	fmt.Println("Done!")
}

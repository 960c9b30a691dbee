package yml2tex_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-yml2tex"
)

// Example converts a one-frame outline.
func Example() {
	conv, err := yml2tex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tex, err := conv.Convert(context.Background(), yml2tex.Input{
		Outline: []byte("Intro:\n  Basics:\n    Welcome:\n      - Hi there\n"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	body := string(tex)
	body = body[strings.Index(body, `\section`):]
	fmt.Print(body)
	// Output:
	// \section{Intro}
	// \subsection{Basics}
	// \frame {
	// 	\frametitle{Welcome}
	// 	\begin{itemize}[<+-| alert@+>]
	// 	\item Hi there
	// 	\end{itemize}
	// }
	// \end{document}
}

// Example_nestedItems shows a mapping item opening a nested list.
func Example_nestedItems() {
	conv, err := yml2tex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tex, err := conv.Convert(context.Background(), yml2tex.Input{
		Outline: []byte("S:\n  Sub:\n    Shopping:\n      - Fruits:\n          - Apple\n          - Banana\n      - Bread\n"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, line := range strings.Split(string(tex), "\n") {
		if strings.Contains(line, `\item`) {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// \item Fruits
	// \item Apple
	// \item Banana
	// \item Bread
}

// Example_metadata sets the title block from the metas entry.
func Example_metadata() {
	conv, err := yml2tex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tex, err := conv.Convert(context.Background(), yml2tex.Input{
		Outline: []byte("metas:\n  title: Demo\n  author: Jane\nS:\n  Sub:\n    F: [x]\n"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, line := range strings.Split(string(tex), "\n") {
		if strings.HasPrefix(line, `\title`) || strings.HasPrefix(line, `\author`) {
			fmt.Println(line)
		}
	}
	// Output:
	// \title{Demo}
	// \author{Jane}
}

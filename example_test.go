package md2html_test

import (
	"context"
	"fmt"

	md2html "github.com/alnah/go-md2html"
)

func ExampleService_Convert() {
	svc := md2html.New()

	html, err := svc.Convert(context.Background(), md2html.Input{
		Markdown: "# My Title\n\n- first\n- second",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(html)
	// Output:
	// <html>
	// <body>
	// <h1>My Title</h1>
	// <ul>
	// <li>first</li>
	// <li>second</li>
	// </ul>
	// </body>
	// </html>
}

func ExampleWithBareFragment() {
	svc := md2html.New(md2html.WithBareFragment())

	html, err := svc.Convert(context.Background(), md2html.Input{
		Markdown: "**bold** and __emphasis__",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(html)
	// Output:
	// <p><b>bold</b> and <em>emphasis</em></p>
}

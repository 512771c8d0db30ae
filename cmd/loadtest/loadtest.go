//nolint:all
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Rough smoke client: create a few messages, list them back, delete the
// first one. Run against a local instance.
func main() {
	base := "http://localhost:8080"

	var ids []string
	for i := 0; i < 5; i++ {
		body, _ := json.Marshal(map[string]string{
			"content": fmt.Sprintf("load test message %d", i),
		})

		res, err := http.Post(base+"/messages", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("failed to send POST request to [%s]: %v", base+"/messages", err)
			return
		}

		var msg struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(res.Body).Decode(&msg); err != nil {
			log.Printf("failed to decode create response: %v", err)
		}
		res.Body.Close()

		ids = append(ids, msg.ID)
		log.Printf("created message [%s]: %d", msg.ID, res.StatusCode)
	}

	res, err := http.Get(base + "/messages")
	if err != nil {
		log.Printf("failed to send GET request to [%s]: %v", base+"/messages", err)
		return
	}
	defer res.Body.Close()

	var listed []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&listed); err != nil {
		log.Printf("failed to decode list response: %v", err)
		return
	}
	log.Printf("listed %d messages", len(listed))

	if len(ids) > 0 {
		req, _ := http.NewRequest(http.MethodDelete, base+"/messages/"+ids[0], nil)
		delRes, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("failed to send DELETE request: %v", err)
			return
		}
		delRes.Body.Close()
		log.Printf("deleted message [%s]: %d", ids[0], delRes.StatusCode)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"tenanta/backend/internal/models"
)

// Small operator CLI that drives the running backend over its HTTP API.
// The base URL is taken from TENANTA_API_URL (default http://localhost:8080).

func apiURL(path string) string {
	base := os.Getenv("TENANTA_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base + path
}

func getJSON(path string, out interface{}) error {
	resp, err := http.Get(apiURL(path))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func sendJSON(method, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, apiURL(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: login, list-properties, list-users, occupancy, close-complaint")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "login":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin login <user_id>")
			os.Exit(1)
		}
		var user models.User
		if err := sendJSON(http.MethodPost, "/api/session", map[string]string{"user_id": os.Args[2]}, &user); err != nil {
			log.Fatalf("Error setting session: %v", err)
		}
		fmt.Printf("Session set to %s (%s)\n", user.FullName, user.Role)

	case "list-properties":
		var properties []models.Property
		if err := getJSON("/api/properties", &properties); err != nil {
			log.Fatalf("Error listing properties: %v", err)
		}
		for _, p := range properties {
			fmt.Printf("%s  %-25s  %s, %d rooms (%d vacant)\n",
				p.PropertyID, p.Name, p.Type, p.TotalRooms, p.VacantRooms)
		}

	case "list-users":
		var users []models.User
		if err := getJSON("/api/users", &users); err != nil {
			log.Fatalf("Error listing users: %v", err)
		}
		for _, u := range users {
			fmt.Printf("%s  %-20s  %s  %s\n", u.UserID, u.FullName, u.Role, u.Email)
		}

	case "occupancy":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin occupancy <property_id>")
			os.Exit(1)
		}
		var occ struct {
			Occupied   int `json:"occupied"`
			TotalRooms int `json:"total_rooms"`
		}
		if err := getJSON("/api/properties/"+os.Args[2]+"/occupancy", &occ); err != nil {
			log.Fatalf("Error fetching occupancy: %v", err)
		}
		fmt.Printf("Property %s: %d/%d rooms occupied\n", os.Args[2], occ.Occupied, occ.TotalRooms)

	case "close-complaint":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin close-complaint <complaint_id>")
			os.Exit(1)
		}
		complaintID := os.Args[2]
		var complaint models.Complaint
		if err := getJSON("/api/complaints/"+complaintID, &complaint); err != nil {
			log.Fatalf("Error fetching complaint: %v", err)
		}
		complaint.Status = models.ComplaintClosed
		if err := sendJSON(http.MethodPut, "/api/complaints/"+complaintID, complaint, &complaint); err != nil {
			log.Fatalf("Error closing complaint: %v", err)
		}
		fmt.Printf("Complaint %s closed.\n", complaintID)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

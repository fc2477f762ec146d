package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	rpmGrpc "github.com/Sinon1310/CareSync-sub000/pkg/grpc"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

var maxPatients int = 1000
var doctorsPerPatient int = 2
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient rpmGrpc.MonitorServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var doctorIDs []string

func main() {
	patientIDs := make([]string, maxPatients)
	for i := range maxPatients {
		patientIDs[i] = uuid.NewString()
	}
	doctorIDs = make([]string, maxPatients/10)
	for i := range doctorIDs {
		doctorIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v patient IDs and %v doctor IDs\n", maxPatients, len(doctorIDs))

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = rpmGrpc.NewMonitorServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxPatients {
		wg.Add(1)
		go func() {
			enrollPatient(i, patientIDs[i])
			fmt.Printf("\renrolled patient %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\renrolled %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients*(1+doctorsPerPatient))/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxPatients {
		wg.Add(1)
		go func() {
			doAction(patientIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v patients: used time=%v seconds, throughput=%v action/second\n",
		maxPatients, usedTime.Seconds(), float64(maxPatients*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rndInt(100000)%2 == 0
}

func rndInt(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func postJSON(path string, payload any, sess *models.Session) (*http.Response, error) {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if sess != nil {
		req.Header.Set("X-User-ID", sess.UserID)
		req.Header.Set("X-User-Role", string(sess.Role))
	}
	return http.DefaultClient.Do(req)
}

func enrollPatient(index int, patientID string) {
	resp, err := postJSON("/patients", map[string]string{
		"id":   patientID,
		"name": fmt.Sprintf("Patient %04d", index),
	}, nil)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()

	for range doctorsPerPatient {
		doctorID := doctorIDs[rndInt(len(doctorIDs))]
		if flipCoin() {
			resp, err := postJSON("/links", map[string]string{
				"doctor_id":  doctorID,
				"patient_id": patientID,
			}, nil)
			if err != nil {
				panic(err)
			}
			resp.Body.Close()
		} else {
			resp, err := grpcClient.LinkDoctor(context.Background(), &rpmGrpc.LinkDoctorRequest{
				DoctorId:  doctorID,
				PatientId: patientID,
			})
			if err != nil || !resp.Status.Success {
				panic(fmt.Sprintf("err: %v, resp: %v", err, resp))
			}
		}
	}
}

// randomVital mostly produces normal values with a few warning and critical
// ones mixed in.
func randomVital() (models.VitalType, string) {
	switch rndInt(4) {
	case 0:
		return models.VitalTypeBloodPressure, fmt.Sprintf("%d/%d", 100+rndInt(90), 60+rndInt(40))
	case 1:
		return models.VitalTypeBloodSugar, fmt.Sprintf("%d", 60+rndInt(220))
	case 2:
		return models.VitalTypeHeartRate, fmt.Sprintf("%d", 45+rndInt(85))
	default:
		return models.VitalTypeTemperature, fmt.Sprintf("%.1f", 96.0+float64(rndInt(80))/10)
	}
}

func doAction(patientID string) {
	actions := []func(){
		genSubmitReadingAction(patientID),
		genGetDoctorAlertsAction(),
		genSubmitReadingAction(patientID),
	}
	actionNames := []string{
		"SubmitReading",
		"GetDoctorAlerts",
		"SubmitReading",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for patient %v", actionNames[index], patientID)
		time.Sleep(time.Duration(100+rndInt(1000)) * time.Millisecond)
	}
}

func genSubmitReadingAction(patientID string) func() {
	return func() {
		vitalType, value := randomVital()
		sess := models.Session{UserID: patientID, Role: models.RolePatient}

		if flipCoin() {
			resp, err := postJSON(fmt.Sprintf("/patients/%s/readings", patientID), map[string]string{
				"type":        string(vitalType),
				"value":       value,
				"recorded_at": time.Now().Format(time.RFC3339),
			}, &sess)
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
		} else {
			resp, err := grpcClient.SubmitReading(rpmGrpc.WithSession(context.Background(), sess), &rpmGrpc.SubmitReadingRequest{
				PatientId: patientID,
				Type:      string(vitalType),
				Value:     value,
			})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp)
			}
		}
	}
}

func genGetDoctorAlertsAction() func() {
	return func() {
		doctorID := doctorIDs[rndInt(len(doctorIDs))]

		if flipCoin() {
			resp, err := http.Get(fmt.Sprintf("http://%s/doctors/%s/alerts", httpHostPort, doctorID))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp)
			}
		} else {
			resp, err := grpcClient.GetDoctorAlerts(context.Background(), &rpmGrpc.DoctorRequest{DoctorId: doctorID})
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			if !resp.Status.Success {
				fmt.Printf("\nresponse success = false: %v\n", resp)
			}
		}
	}
}

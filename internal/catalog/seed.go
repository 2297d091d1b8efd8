package catalog

// Demo records. Hashes are display strings only; nothing is written to a chain.

func seedCases() []Case {
	return []Case{
		{
			ID:             "001",
			Name:           "Sarah Johnson",
			Age:            24,
			Status:         CaseActive,
			Location:       "Downtown Metro Area",
			Date:           "2024-01-15",
			Description:    "Last seen leaving work at 6:30 PM, wearing blue jacket and black jeans",
			Reward:         1000,
			Tips:           23,
			BlockchainHash: "0x8f7a2b4c9d1e3f6a8b9c2d4e5f7a8b9c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6",
			Submitter:      "Metro Police Department",
		},
		{
			ID:             "002",
			Name:           "Michael Chen",
			Age:            16,
			Status:         CaseResolved,
			Location:       "Riverside District",
			Date:           "2024-01-10",
			Description:    "Missing after school basketball practice, found safe with relatives",
			Reward:         500,
			Tips:           12,
			BlockchainHash: "0x1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2",
			Submitter:      "Family Member",
		},
		{
			ID:             "003",
			Name:           "Emma Rodriguez",
			Age:            31,
			Status:         CaseActive,
			Location:       "University Campus",
			Date:           "2024-01-12",
			Description:    "PhD student, last seen at library, vehicle found in parking lot",
			Reward:         2000,
			Tips:           45,
			BlockchainHash: "0x3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4",
			Submitter:      "University Police",
		},
	}
}

func seedTips() []Tip {
	return []Tip{
		{
			ID:             "tip_001",
			CaseID:         "001",
			CaseName:       "Sarah Johnson",
			Description:    "Saw someone matching the description at Central Station around 8 PM",
			Location:       "40.7128, -74.0060",
			Timestamp:      "2024-01-16 20:15",
			Status:         TipVerified,
			Reward:         50,
			BlockchainHash: "0xa1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1b2",
		},
		{
			ID:             "tip_002",
			CaseID:         "003",
			CaseName:       "Emma Rodriguez",
			Description:    "Vehicle matching description seen in university parking garage",
			Location:       "40.7589, -73.9851",
			Timestamp:      "2024-01-15 14:30",
			Status:         TipPending,
			Reward:         0,
			BlockchainHash: "Pending blockchain confirmation...",
		},
	}
}

func seedAlerts() []Alert {
	return []Alert{
		{
			ID:          "alert_001",
			CaseID:      "001",
			CaseName:    "Sarah Johnson",
			Age:         24,
			Description: "Last seen downtown area, blue jacket, black jeans",
			Location:    "Downtown Metro Area",
			Radius:      5,
			Timestamp:   "2024-01-16 18:30",
			Priority:    PriorityHigh,
			Status:      AlertActive,
			Responders:  234,
		},
		{
			ID:          "alert_002",
			CaseID:      "003",
			CaseName:    "Emma Rodriguez",
			Age:         31,
			Description: "PhD student, last seen at university library",
			Location:    "University Campus",
			Radius:      3,
			Timestamp:   "2024-01-15 22:15",
			Priority:    PriorityHigh,
			Status:      AlertActive,
			Responders:  187,
		},
		{
			ID:          "alert_003",
			CaseID:      "002",
			CaseName:    "Michael Chen",
			Age:         16,
			Description: "Found safe with relatives, case resolved",
			Location:    "Riverside District",
			Radius:      4,
			Timestamp:   "2024-01-14 16:45",
			Priority:    PriorityMedium,
			Status:      AlertResolved,
			Responders:  156,
		},
	}
}

func seedTargets() []TipTarget {
	return []TipTarget{
		{ID: "001", Name: "Sarah Johnson", Reward: 1000},
		{ID: "003", Name: "Emma Rodriguez", Reward: 2000},
	}
}
